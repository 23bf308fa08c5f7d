package scheduler

import "testing"

func TestOverworkedEmployees(t *testing.T) {
	weekly := map[string]map[string]float64{
		"week_1": {"Toli": 48, "Tole": 48},
		"week_2": {"Toli": 40, "Tole": 32},
	}

	if got := OverworkedEmployees(weekly, 50); len(got) != 0 {
		t.Errorf("Expected no overworked employees with cap 50, got %v", got)
	}

	got := OverworkedEmployees(weekly, 40)
	if len(got) != 2 {
		t.Fatalf("Expected 2 overworked entries with cap 40, got %d", len(got))
	}
	if got[0].Name != "Tole" || got[0].TotalHours != 48 || got[0].Week != "week_1" {
		t.Errorf("Unexpected first entry: %+v", got[0])
	}
	if got[1].Name != "Toli" || got[1].TotalHours != 48 || got[1].Week != "week_1" {
		t.Errorf("Unexpected second entry: %+v", got[1])
	}
}

func TestOverworkedEmployees_WeekOrder(t *testing.T) {
	weekly := map[string]map[string]float64{
		"week_3": {"Tina": 44},
		"week_1": {"Toli": 48},
	}

	got := OverworkedEmployees(weekly, 40)
	if len(got) != 2 {
		t.Fatalf("Expected 2 overworked entries, got %d", len(got))
	}
	if got[0].Week != "week_1" || got[1].Week != "week_3" {
		t.Errorf("Entries should be ordered by week index, got %+v", got)
	}
}

func TestMedianOfWeeklyHours(t *testing.T) {
	odd := map[string]map[string]float64{
		"week_1": {"Toli": 35, "Tole": 35, "Tina": 28},
	}
	if got := MedianOfWeeklyHours(odd); got != 35 {
		t.Errorf("Median of [28,35,35] should be 35, got %f", got)
	}

	even := map[string]map[string]float64{
		"week_1": {"Toli": 35, "Tole": 35, "Tina": 28, "Tio": 25},
	}
	if got := MedianOfWeeklyHours(even); got != 31.5 {
		t.Errorf("Median of [25,28,35,35] should be 31.5, got %f", got)
	}

	if got := MedianOfWeeklyHours(nil); got != 0 {
		t.Errorf("Median of no entries should be 0, got %f", got)
	}
}
