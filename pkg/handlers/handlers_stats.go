package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/radityaputra/shift-roster-api/pkg/database"
)

// RecordGeneration bumps today's generation counters using an efficient
// upsert (supported by both Postgres and SQLite).
func (h *Handler) RecordGeneration(shiftCount, employeeCount int) {
	today := time.Now().Format("2006-01-02")

	h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"total_shifts":    gorm.Expr("total_shifts + ?", shiftCount),
			"total_employees": gorm.Expr("total_employees + ?", employeeCount),
		}),
	}).Create(&database.GenerationStat{
		Date:           today,
		RequestCount:   1,
		TotalShifts:    shiftCount,
		TotalEmployees: employeeCount,
	})
}

// GetStats returns the last 30 days of generation counters with totals.
func (h *Handler) GetStats(c *gin.Context) {
	var stats []database.GenerationStat
	if err := h.DB.Order("date desc").Limit(30).Find(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch stats"})
		return
	}

	var totalRequests, totalShifts, totalEmployees int64
	for _, s := range stats {
		totalRequests += int64(s.RequestCount)
		totalShifts += int64(s.TotalShifts)
		totalEmployees += int64(s.TotalEmployees)
	}

	c.JSON(http.StatusOK, gin.H{
		"history": stats,
		"totals": gin.H{
			"requests":  totalRequests,
			"shifts":    totalShifts,
			"employees": totalEmployees,
		},
	})
}
