package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/radityaputra/shift-roster-api/pkg/database"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

type employeeRequest struct {
	Name string `json:"name"`
}

// CreateEmployee adds one employee to the directory. The name must be a
// non-blank string; anything else (numbers, whitespace) is rejected.
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be a text"})
		return
	}

	employee := database.Employee{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(req.Name),
	}
	if err := h.DB.Create(&employee).Error; err != nil {
		h.Log.Error("create employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// ListEmployees returns every employee in creation order. This ordering is
// also the roster order the scheduler assigns in.
func (h *Handler) ListEmployees(c *gin.Context) {
	var employees []database.Employee
	if err := h.DB.Order("created_at asc").Find(&employees).Error; err != nil {
		h.Log.Error("list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// GetEmployee returns one employee by id.
func (h *Handler) GetEmployee(c *gin.Context) {
	var employee database.Employee
	if err := h.DB.First(&employee, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		h.Log.Error("get employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// UpdateEmployee renames an existing employee.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be a text"})
		return
	}

	var employee database.Employee
	if err := h.DB.First(&employee, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		h.Log.Error("update employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch employee"})
		return
	}

	employee.Name = strings.TrimSpace(req.Name)
	if err := h.DB.Save(&employee).Error; err != nil {
		h.Log.Error("update employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// DeleteEmployee removes an employee from the directory.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	var employee database.Employee
	if err := h.DB.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		h.Log.Error("delete employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch employee"})
		return
	}

	if err := h.DB.Delete(&employee).Error; err != nil {
		h.Log.Error("delete employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee ID : " + id + " successfully deleted"})
}
