package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/radityaputra/shift-roster-api/pkg/database"
	"github.com/radityaputra/shift-roster-api/pkg/models"
	"github.com/radityaputra/shift-roster-api/pkg/scheduler"
)

// roster loads the employee names in creation order, the order the
// scheduler assigns in.
func (h *Handler) roster() ([]string, error) {
	var employees []database.Employee
	if err := h.DB.Order("created_at asc").Find(&employees).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	return names, nil
}

// CreateSchedule generates the month's shift assignments and workload
// summary for the current roster.
func (h *Handler) CreateSchedule(c *gin.Context) {
	var cfg models.ScheduleConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid configuration",
			"message": err.Error(),
		})
		return
	}

	names, err := h.roster()
	if err != nil {
		h.Log.Error("load roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load employees"})
		return
	}

	result, err := scheduler.CreateSchedule(cfg, names)
	if err != nil {
		var verr *scheduler.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   string(verr.Kind),
				"message": verr.Message,
			})
			return
		}
		h.Log.Error("create schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create schedule"})
		return
	}

	h.RecordGeneration(len(result.Schedules), len(names))
	h.Log.Info("schedule generated",
		zap.Int("month", cfg.Month),
		zap.Int("entries", len(result.Schedules)),
		zap.Int("employees", len(names)),
		zap.Int("underfilled", len(result.Summary.UnderfilledShifts)),
	)

	c.JSON(http.StatusOK, result)
}

// ValidateSchedule checks a configuration against the current roster without
// generating anything.
func (h *Handler) ValidateSchedule(c *gin.Context) {
	var cfg models.ScheduleConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	names, err := h.roster()
	if err != nil {
		h.Log.Error("load roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load employees"})
		return
	}

	if err := scheduler.ValidateConfig(&cfg, len(names)); err != nil {
		var verr *scheduler.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusOK, gin.H{
				"valid":   false,
				"error":   string(verr.Kind),
				"message": verr.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not validate configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count": len(names),
			"shift_per_day":  cfg.ShiftPerDay,
			"hour_shift":     cfg.HourShift,
		},
	})
}
