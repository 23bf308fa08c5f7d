package scheduler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/radityaputra/shift-roster-api/pkg/models"
)

// OverworkedEmployees lists every (week, employee) pair whose accumulated
// hours strictly exceed limit, ordered by week index and then by employee
// name so the report is deterministic.
func OverworkedEmployees(weekly map[string]map[string]float64, limit float64) []models.OverworkedEmployee {
	weeks := make([]string, 0, len(weekly))
	for week := range weekly {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weekIndex(weeks[i]) < weekIndex(weeks[j]) })

	overworked := make([]models.OverworkedEmployee, 0)
	for _, week := range weeks {
		names := make([]string, 0, len(weekly[week]))
		for name := range weekly[week] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if hours := weekly[week][name]; hours > limit {
				overworked = append(overworked, models.OverworkedEmployee{
					Name:       name,
					TotalHours: hours,
					Week:       week,
				})
			}
		}
	}
	return overworked
}

// MedianOfWeeklyHours flattens all (week, employee) hour entries into one
// multiset and returns its median: the middle value for an odd count, the
// mean of the two middle values for an even count, zero when empty.
func MedianOfWeeklyHours(weekly map[string]map[string]float64) float64 {
	var values []float64
	for _, week := range weekly {
		for _, hours := range week {
			values = append(values, hours)
		}
	}
	if len(values) == 0 {
		return 0
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

func weekIndex(key string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(key, "week_"))
	return n
}
