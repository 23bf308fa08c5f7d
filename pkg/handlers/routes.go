package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register wires every route onto the engine. The calendar frontend is
// served from another origin, so CORS stays wide open.
func Register(r *gin.Engine, h *Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Roster API",
			"version": "1.1.0",
		})
	})

	// Employee directory
	r.POST("/employee", h.CreateEmployee)
	r.GET("/employees", h.ListEmployees)
	r.GET("/employee/:id", h.GetEmployee)
	r.PUT("/employee/:id", h.UpdateEmployee)
	r.DELETE("/employee/:id", h.DeleteEmployee)

	// Scheduling
	r.POST("/create-schedule", h.CreateSchedule)
	r.POST("/validate-schedule", h.ValidateSchedule)
	r.GET("/stats", h.GetStats)
}
