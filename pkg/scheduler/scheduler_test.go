package scheduler

import (
	"errors"
	"testing"

	"github.com/radityaputra/shift-roster-api/pkg/models"
)

func assertRejected(t *testing.T, cfg models.ScheduleConfig, roster []string, kind ValidationKind, message string) {
	t.Helper()

	_, err := CreateSchedule(cfg, roster)
	if err == nil {
		t.Fatalf("Expected configuration to be rejected")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a ValidationError, got %v", err)
	}
	if verr.Kind != kind {
		t.Errorf("Expected kind %q, got %q", kind, verr.Kind)
	}
	if verr.Message != message {
		t.Errorf("Expected message %q, got %q", message, verr.Message)
	}
}

func TestCreateSchedule_NoEmployees(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, ShiftPerDay: 2, OpenHour: 8, HourShift: 8,
		EmployeePerShift: 1, MaximumHourPerWeek: 40,
	}
	assertRejected(t, cfg, nil, NoEmployees,
		"There are no employees available to create a schedule")
}

func TestCreateSchedule_PerShiftExceedsTotal(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, ShiftPerDay: 2, OpenHour: 8, HourShift: 8,
		EmployeePerShift: 2, MaximumHourPerWeek: 40,
	}
	assertRejected(t, cfg, []string{"Tole"}, InvalidConfiguration,
		"Number of employees per shift cannot exceed total employees")
}

func TestCreateSchedule_HoursExceed24(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, ShiftPerDay: 4, OpenHour: 8, HourShift: 8,
		EmployeePerShift: 1, MaximumHourPerWeek: 40,
	}
	assertRejected(t, cfg, []string{"Dul", "Komeng"}, InvalidConfiguration,
		"Total shift hours in a day exceed 24 hours")
}

func TestCreateSchedule_InsufficientCoverage(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, ShiftPerDay: 2, OpenHour: 8, HourShift: 8,
		EmployeePerShift: 2, MaximumHourPerWeek: 40,
	}
	assertRejected(t, cfg, []string{"Dul", "Komeng", "Ucok"}, InvalidConfiguration,
		"Not enough employees to cover all shifts")
}

func TestCreateSchedule_FullMonth(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, Year: 2026, ShiftPerDay: 2, OpenHour: 7, HourShift: 8,
		EmployeePerShift: 2, MaximumHourPerWeek: 40,
	}
	roster := []string{"Toli", "Tole", "Tina", "Tralala"}

	result, err := CreateSchedule(cfg, roster)
	if err != nil {
		t.Fatalf("Expected a schedule, got error %v", err)
	}
	if len(result.Schedules) == 0 {
		t.Fatalf("Schedule should not be empty")
	}

	// First day, first shift fills in roster order.
	first := result.Schedules[0]
	if first.TimeStart != "07:00" || first.TimeEnd != "15:00" {
		t.Errorf("Unexpected first window: %s-%s", first.TimeStart, first.TimeEnd)
	}
	if len(first.Employees) != 2 || first.Employees[0] != "Toli" || first.Employees[1] != "Tole" {
		t.Errorf("Expected first shift staffed by Toli and Tole, got %v", first.Employees)
	}

	for _, entry := range result.Schedules {
		if len(entry.Employees) > cfg.EmployeePerShift {
			t.Errorf("Entry on %s exceeds capacity: %v", entry.Date, entry.Employees)
		}
	}

	// The eligibility filter must keep every week at or under the cap.
	for week, hoursByName := range result.Summary.WeeklyHourBreakdown {
		for name, hours := range hoursByName {
			if hours > cfg.MaximumHourPerWeek {
				t.Errorf("%s exceeds the weekly cap in %s: %f", name, week, hours)
			}
		}
	}
	if len(result.Summary.OverworkedEmployees) != 0 {
		t.Errorf("No employee should be overworked, got %v", result.Summary.OverworkedEmployees)
	}

	if len(result.Summary.MonthlyHourBreakdown) != len(roster) {
		t.Errorf("Every employee should have worked, got %v", result.Summary.MonthlyHourBreakdown)
	}
	if len(result.Summary.WeeklyHourBreakdown) == 0 {
		t.Errorf("Weekly breakdown should not be empty")
	}
	if result.Summary.MedianOfWeeklyHour <= 0 {
		t.Errorf("Median should be positive, got %f", result.Summary.MedianOfWeeklyHour)
	}
}

func TestCreateSchedule_UnderfilledWhenCapped(t *testing.T) {
	// Two employees, one 8-hour shift a day, two per shift, 40h cap: after
	// five days both are capped and the remaining shifts of the week stay
	// under-filled instead of failing the run.
	cfg := models.ScheduleConfig{
		Month: 0, Year: 2026, ShiftPerDay: 1, OpenHour: 8, HourShift: 8,
		EmployeePerShift: 2, MaximumHourPerWeek: 40,
	}

	result, err := CreateSchedule(cfg, []string{"Dul", "Komeng"})
	if err != nil {
		t.Fatalf("Expected best-effort schedule, got error %v", err)
	}
	if len(result.Summary.UnderfilledShifts) == 0 {
		t.Fatalf("Expected under-filled shifts once both employees hit the cap")
	}

	for _, uf := range result.Summary.UnderfilledShifts {
		if uf.Required != 2 {
			t.Errorf("Expected required 2, got %d", uf.Required)
		}
		if uf.Assigned >= uf.Required {
			t.Errorf("Under-fill signal for a fully staffed shift: %+v", uf)
		}
	}

	// Days 6 and 7 of each week have no eligible employees at all.
	for week, hoursByName := range result.Summary.WeeklyHourBreakdown {
		for name, hours := range hoursByName {
			if hours > 40 {
				t.Errorf("%s exceeds the cap in %s: %f", name, week, hours)
			}
		}
	}
}

func TestValidateConfig_AppliesHourShiftDefault(t *testing.T) {
	cfg := models.ScheduleConfig{
		Month: 0, ShiftPerDay: 3, OpenHour: 8,
		EmployeePerShift: 1, MaximumHourPerWeek: 40,
	}
	if err := ValidateConfig(&cfg, 5); err != nil {
		t.Fatalf("Expected valid configuration, got %v", err)
	}
	if cfg.HourShift != 8 {
		t.Errorf("Expected defaulted hour shift 8, got %d", cfg.HourShift)
	}
}
