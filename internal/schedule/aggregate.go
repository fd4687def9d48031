package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// SumSelectedHours считает все выбранные часы недели.
// p == PriorityNone учитывает любой выбранный приоритет
func SumSelectedHours(grid domain.Grid, p domain.Priority) int {
	total := 0
	for _, cells := range grid {
		for _, c := range cells {
			if matches(c, p) {
				total++
			}
		}
	}
	return total
}

// LongestContiguousBlock возвращает длину (в часах) самого длинного непрерывного
// интервала одного приоритета за неделю
func LongestContiguousBlock(grid domain.Grid, p domain.Priority) int {
	longest := 0
	keep := func(c domain.Cell) bool { return matches(c, p) }
	for _, cells := range grid {
		for _, span := range mergeDay(cells, keep) {
			longest = max(longest, span.end-span.begin)
		}
	}
	return longest
}

// SelectedHoursPerSchedule считает выбранные часы для каждой сетки по политике policy
func SelectedHoursPerSchedule(grids []domain.Grid, p domain.Priority, policy domain.AggregationPolicy) ([]int, error) {
	var measure func(domain.Grid, domain.Priority) int
	switch policy {
	case domain.PolicySum:
		measure = SumSelectedHours
	case domain.PolicyLongest:
		measure = LongestContiguousBlock
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	hours := make([]int, len(grids))
	for i, g := range grids {
		hours[i] = measure(g, p)
	}
	return hours, nil
}

// FindUnderMinimumDuration возвращает индексы, где selectedHours[i] часов меньше
// requiredMinSeconds[i] секунд. Лишние элементы более длинного списка игнорируются
func FindUnderMinimumDuration(requiredMinSeconds []int64, selectedHours []int) []int {
	n := min(len(requiredMinSeconds), len(selectedHours))
	under := make([]int, 0)
	for i := 0; i < n; i++ {
		if int64(selectedHours[i])*domain.SecondsPerHour < requiredMinSeconds[i] {
			under = append(under, i)
		}
	}
	return under
}

func matches(c domain.Cell, p domain.Priority) bool {
	if !c.Priority.IsSelected() {
		return false
	}
	return p == domain.PriorityNone || c.Priority == p
}
