package scheduler

import (
	"fmt"
	"time"

	"github.com/radityaputra/shift-roster-api/pkg/models"
)

// Run owns the mutable state of one schedule generation: the in-progress
// entry list, the hour ledger and the day's shift windows. A fresh Run is
// allocated per request, so concurrent generations never share state.
type Run struct {
	cfg     models.ScheduleConfig
	roster  []string
	windows []models.ShiftWindow
	entries []*models.ScheduleEntry
	ledger  *HourLedger

	underfilled []models.UnderfilledShift
}

// ValidateConfig applies the hour_shift default and rejects configurations
// that can never produce a valid schedule. The coverage check only verifies
// aggregate headcount; a roster can still run dry late in the month once the
// weekly cap removes candidates, which assignment handles as best-effort
// under-filling rather than failure.
func ValidateConfig(cfg *models.ScheduleConfig, rosterSize int) error {
	if rosterSize == 0 {
		return &ValidationError{
			Kind:    NoEmployees,
			Message: "There are no employees available to create a schedule",
		}
	}
	if cfg.Month < 0 || cfg.Month > 11 || cfg.ShiftPerDay < 1 ||
		cfg.OpenHour < 0 || cfg.OpenHour > 23 ||
		cfg.EmployeePerShift < 1 || cfg.MaximumHourPerWeek <= 0 {
		return &ValidationError{
			Kind:    InvalidConfiguration,
			Message: "Schedule parameters are out of range",
		}
	}
	if cfg.EmployeePerShift > rosterSize {
		return &ValidationError{
			Kind:    InvalidConfiguration,
			Message: "Number of employees per shift cannot exceed total employees",
		}
	}
	if cfg.HourShift <= 0 {
		cfg.HourShift = 24 / cfg.ShiftPerDay
	}
	if cfg.ShiftPerDay*cfg.HourShift > 24 {
		return &ValidationError{
			Kind:    InvalidConfiguration,
			Message: "Total shift hours in a day exceed 24 hours",
		}
	}
	if cfg.EmployeePerShift*cfg.ShiftPerDay > rosterSize {
		return &ValidationError{
			Kind:    InvalidConfiguration,
			Message: "Not enough employees to cover all shifts",
		}
	}
	return nil
}

// CreateSchedule runs the whole assignment pass for one month: it validates
// the configuration, walks every calendar day chronologically, fills each
// shift window greedily in roster order under the weekly-hour cap, and
// derives the workload summary from the accumulated hours.
func CreateSchedule(cfg models.ScheduleConfig, roster []string) (*models.ScheduleResult, error) {
	if err := ValidateConfig(&cfg, len(roster)); err != nil {
		return nil, err
	}

	run := &Run{
		cfg:     cfg,
		roster:  roster,
		windows: GenerateShiftTimes(cfg.OpenHour, cfg.ShiftPerDay, cfg.HourShift),
		entries: make([]*models.ScheduleEntry, 0),
		ledger:  NewHourLedger(),
	}
	run.assignMonth()

	return &models.ScheduleResult{
		Schedules: run.entries,
		Summary:   run.summary(),
	}, nil
}

func (r *Run) assignMonth() {
	year := r.cfg.Year
	if year == 0 {
		year = time.Now().Year()
	}
	month := time.Month(r.cfg.Month + 1)
	duration := float64(r.cfg.HourShift)

	for day := 1; day <= daysIn(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		weekKey := fmt.Sprintf("week_%d", 1+(day-1)/7)
		for idx := range r.windows {
			r.assignShift(date, weekKey, idx, duration)
		}
	}
}

// assignShift fills one (date, shift window) slot. Eligibility is per shift:
// an employee is skipped only when already on this exact shift or when the
// projected week total would exceed the cap. Selection is first-available in
// roster order, so the result is deterministic.
func (r *Run) assignShift(date time.Time, weekKey string, shiftIdx int, duration float64) {
	window := r.windows[shiftIdx]

	var created *models.ScheduleEntry
	assigned := 0
	for _, name := range r.roster {
		if assigned == r.cfg.EmployeePerShift {
			break
		}
		if r.ledger.WeekHours(weekKey, name)+duration > r.cfg.MaximumHourPerWeek {
			continue
		}

		entry, ok := EmployeeOnShift(date, name, shiftIdx, r.entries, r.windows)
		if !ok {
			if created != nil {
				// Already on this shift.
				continue
			}
			// The lookup never creates the first entry for a (date, shift)
			// pair; that happens here, on the first eligible pick.
			created = &models.ScheduleEntry{
				Date:      date,
				Employees: []string{},
				TimeStart: window.TimeStart,
				TimeEnd:   window.TimeEnd,
			}
			r.entries = append(r.entries, created)
			entry = created
		} else {
			created = entry
		}

		entry.Employees = append(entry.Employees, name)
		r.ledger.AddHours(name, weekKey, duration)
		assigned++
	}

	if assigned < r.cfg.EmployeePerShift {
		r.underfilled = append(r.underfilled, models.UnderfilledShift{
			Date:     date,
			Shift:    window.Shift,
			Assigned: assigned,
			Required: r.cfg.EmployeePerShift,
		})
	}
}

func (r *Run) summary() models.ScheduleSummary {
	return models.ScheduleSummary{
		MedianOfWeeklyHour:   MedianOfWeeklyHours(r.ledger.Weekly),
		WeeklyHourBreakdown:  r.ledger.Weekly,
		MonthlyHourBreakdown: r.ledger.Total,
		OverworkedEmployees:  OverworkedEmployees(r.ledger.Weekly, r.cfg.MaximumHourPerWeek),
		UnderfilledShifts:    r.underfilled,
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
