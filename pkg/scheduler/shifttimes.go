package scheduler

import (
	"fmt"

	"github.com/radityaputra/shift-roster-api/pkg/models"
)

// GenerateShiftTimes builds the ordered list of shift windows for one day.
// A non-positive hourPerShift means the duration was omitted and defaults to
// 24/shiftsPerDay. Every day of the scheduled month uses the same windows.
func GenerateShiftTimes(openHour, shiftsPerDay, hourPerShift int) []models.ShiftWindow {
	if hourPerShift <= 0 {
		hourPerShift = 24 / shiftsPerDay
	}

	windows := make([]models.ShiftWindow, 0, shiftsPerDay)
	for i := 0; i < shiftsPerDay; i++ {
		start := (openHour + i*hourPerShift) % 24
		end := (start + hourPerShift) % 24
		windows = append(windows, models.ShiftWindow{
			Shift:     i + 1,
			TimeStart: fmt.Sprintf("%02d:00", start),
			TimeEnd:   fmt.Sprintf("%02d:00", end),
		})
	}
	return windows
}
