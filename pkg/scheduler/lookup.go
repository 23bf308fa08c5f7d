package scheduler

import (
	"time"

	"github.com/radityaputra/shift-roster-api/pkg/models"
)

// EmployeeOnDate returns the first entry on the given date whose employee
// set already contains name. The second return value distinguishes "no
// assignment that day" from a real entry.
func EmployeeOnDate(date time.Time, name string, entries []*models.ScheduleEntry) (*models.ScheduleEntry, bool) {
	for _, entry := range entries {
		if !entry.Date.Equal(date) {
			continue
		}
		for _, assigned := range entry.Employees {
			if assigned == name {
				return entry, true
			}
		}
	}
	return nil, false
}

// EmployeeOnShift resolves the live entry for (date, windows[shiftIdx]) that
// name could still join. It reports false when the entry list is empty, the
// shift index is out of range of the day's windows, the employee already
// sits on that shift, or no entry exists yet for the pair; creating the
// first entry is the scheduler's job, never the lookup's. Capacity is also
// the caller's responsibility: the returned entry does not refuse appends
// past employee_per_shift.
func EmployeeOnShift(date time.Time, name string, shiftIdx int, entries []*models.ScheduleEntry, windows []models.ShiftWindow) (*models.ScheduleEntry, bool) {
	if len(entries) == 0 || shiftIdx < 0 || shiftIdx >= len(windows) {
		return nil, false
	}

	window := windows[shiftIdx]
	for _, entry := range entries {
		if !entry.Date.Equal(date) || entry.TimeStart != window.TimeStart || entry.TimeEnd != window.TimeEnd {
			continue
		}
		for _, assigned := range entry.Employees {
			if assigned == name {
				return nil, false
			}
		}
		return entry, true
	}
	return nil, false
}
