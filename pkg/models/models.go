package models

import "time"

// ScheduleConfig is the validated input for one schedule generation run.
// Month is 0-11 as the calendar UI sends it. HourShift of zero means the
// duration was omitted and defaults to 24/ShiftPerDay. Year of zero means
// the current year.
type ScheduleConfig struct {
	Month              int     `json:"month"`
	Year               int     `json:"year,omitempty"`
	ShiftPerDay        int     `json:"shift_per_day"`
	OpenHour           int     `json:"open_hour"`
	HourShift          int     `json:"hour_shift,omitempty"`
	EmployeePerShift   int     `json:"employee_per_shift"`
	MaximumHourPerWeek float64 `json:"maximum_hour_per_week"`
}

// ShiftWindow is one time-of-day interval of the daily shift grid. TimeEnd
// may be numerically earlier than TimeStart when the shift wraps past
// midnight; that is a valid window, not an error.
type ShiftWindow struct {
	Shift     int    `json:"shift"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// ScheduleEntry is the assignment slot for one (date, shift window) pair.
// The scheduler appends employee names while generating; afterwards the
// entry is handed to the caller as-is and must be treated as immutable.
type ScheduleEntry struct {
	Date      time.Time `json:"date"`
	Employees []string  `json:"employees"`
	TimeStart string    `json:"time_start"`
	TimeEnd   string    `json:"time_end"`
}

// OverworkedEmployee is one (employee, week) pair whose accumulated hours
// exceed the configured weekly cap.
type OverworkedEmployee struct {
	Name       string  `json:"name"`
	TotalHours float64 `json:"totalHours"`
	Week       string  `json:"week"`
}

// UnderfilledShift signals that a shift could not be staffed up to
// employee_per_shift after eligibility filtering removed candidates.
type UnderfilledShift struct {
	Date     time.Time `json:"date"`
	Shift    int       `json:"shift"`
	Assigned int       `json:"assigned"`
	Required int       `json:"required"`
}

// ScheduleSummary is the workload report derived from the accumulated hour
// maps once assignment has finished.
type ScheduleSummary struct {
	MedianOfWeeklyHour   float64                       `json:"median_of_weekly_hour"`
	WeeklyHourBreakdown  map[string]map[string]float64 `json:"weekly_hour_breakdown"`
	MonthlyHourBreakdown map[string]float64            `json:"monthly_hour_breakdown"`
	OverworkedEmployees  []OverworkedEmployee          `json:"overworked_employees"`
	UnderfilledShifts    []UnderfilledShift            `json:"underfilled_shifts,omitempty"`
}

// ScheduleResult is the full outcome of one generation run.
type ScheduleResult struct {
	Schedules []*ScheduleEntry `json:"schedules"`
	Summary   ScheduleSummary  `json:"summary"`
}
