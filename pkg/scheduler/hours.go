package scheduler

// HourLedger accumulates worked hours during one generation run. It owns the
// monthly and weekly maps so that every mutation goes through AddHours and
// nothing is shared across runs.
type HourLedger struct {
	// Total maps employee name to hours across the whole scheduled period.
	Total map[string]float64
	// Weekly maps week key ("week_1", "week_2", ...) to employee name to
	// hours accumulated inside that 7-day block.
	Weekly map[string]map[string]float64
}

// NewHourLedger returns an empty ledger for a fresh run.
func NewHourLedger() *HourLedger {
	return &HourLedger{
		Total:  make(map[string]float64),
		Weekly: make(map[string]map[string]float64),
	}
}

// AddHours records one shift assignment for the employee, incrementing both
// the monthly total and the week bucket. Callers must invoke it exactly once
// per assignment event or hours get double counted.
func (l *HourLedger) AddHours(name, weekKey string, hours float64) {
	l.Total[name] += hours
	if l.Weekly[weekKey] == nil {
		l.Weekly[weekKey] = make(map[string]float64)
	}
	l.Weekly[weekKey][name] += hours
}

// WeekHours returns the hours the employee has accumulated in the given week
// so far; zero when the employee has not worked that week.
func (l *HourLedger) WeekHours(weekKey, name string) float64 {
	return l.Weekly[weekKey][name]
}
