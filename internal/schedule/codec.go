package schedule

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/types"
)

// hourSpan полуинтервал [begin, end) в часах одного дня
type hourSpan struct {
	begin    int
	end      int
	priority domain.Priority
}

// NewGrid создает пустую сетку для окна window.
// Если openingHours задан, доступность ячеек вычисляется по периодам работы,
// иначе остаётся AvailabilityUnknown
func NewGrid(window domain.Window, openingHours *domain.OpeningHours) (domain.Grid, error) {
	var grid domain.Grid
	if err := window.Validate(); err != nil {
		return grid, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	for day := 0; day < domain.DaysInWeek; day++ {
		cells := make([]domain.Cell, 0, window.Hours())
		for hour := window.FirstHour; hour <= window.LastHour; hour++ {
			cell := domain.Cell{
				Hour:     hour,
				Label:    fmt.Sprintf("%02d", hour),
				Priority: domain.PriorityNone,
			}
			if openingHours != nil {
				cell.Availability = domain.AvailabilityClosed
				if openingHours.IsOpen(day, hour) {
					cell.Availability = domain.AvailabilityOpen
				}
			}
			cells = append(cells, cell)
		}
		grid[day] = cells
	}

	return grid, nil
}

// CellsToRanges сворачивает выбранные ячейки сетки в максимальные непрерывные интервалы.
// Соседние часы объединяются, только если у них одинаковый приоритет.
// Результат упорядочен по дню, затем по времени начала
func CellsToRanges(grid domain.Grid) []domain.TimeRange {
	return cellsToRanges(grid, func(c domain.Cell) bool {
		return c.Priority.IsSelected()
	})
}

// CellsToRangesWithPriority как CellsToRanges, но учитывает только ячейки приоритета p
func CellsToRangesWithPriority(grid domain.Grid, p domain.Priority) []domain.TimeRange {
	return cellsToRanges(grid, func(c domain.Cell) bool {
		return c.Priority.IsSelected() && c.Priority == p
	})
}

// RangesToCells разворачивает интервалы в сетку окна window.
// При пересечении интервалов одного дня побеждает последний в списке.
// Часы вне окна отбрасываются
func RangesToCells(ranges []domain.TimeRange, window domain.Window, openingHours *domain.OpeningHours) (domain.Grid, error) {
	grid, err := NewGrid(window, openingHours)
	if err != nil {
		return grid, err
	}

	for i, r := range ranges {
		if r.Day < 0 || r.Day >= domain.DaysInWeek {
			return grid, fmt.Errorf("%w: range #%d has day %d", ErrInvalidDay, i, r.Day)
		}

		begin, err := r.BeginTime.Hour()
		if err != nil {
			return grid, fmt.Errorf("%w: range #%d begin %q", ErrInvalidTime, i, r.BeginTime)
		}
		end, err := r.EndTime.EndHour()
		if err != nil {
			return grid, fmt.Errorf("%w: range #%d end %q", ErrInvalidTime, i, r.EndTime)
		}

		from := max(begin, window.FirstHour) - window.FirstHour
		to := min(end, window.LastHour+1) - window.FirstHour
		for h := from; h < to; h++ {
			grid[r.Day][h].Priority = r.Priority
		}
	}

	return grid, nil
}

func cellsToRanges(grid domain.Grid, keep func(domain.Cell) bool) []domain.TimeRange {
	ranges := make([]domain.TimeRange, 0)

	for day, cells := range grid {
		for _, span := range mergeDay(cells, keep) {
			ranges = append(ranges, domain.TimeRange{
				Day:       day,
				BeginTime: types.FromHour(span.begin),
				EndTime:   types.FromHour(span.end),
				Priority:  span.priority,
			})
		}
	}

	return ranges
}

// mergeDay run-length слияние ячеек одного дня. Требует возрастающий порядок часов,
// поэтому неупорядоченный день сначала сортируется (копия, вход не меняется)
func mergeDay(cells []domain.Cell, keep func(domain.Cell) bool) []hourSpan {
	byHour := func(a, b domain.Cell) int { return cmp.Compare(a.Hour, b.Hour) }
	if !slices.IsSortedFunc(cells, byHour) {
		cells = slices.Clone(cells)
		slices.SortStableFunc(cells, byHour)
	}

	merged := make([]hourSpan, 0)
	for _, c := range cells {
		if !keep(c) {
			continue
		}

		n := len(merged)
		if n > 0 && merged[n-1].end == c.Hour && merged[n-1].priority == c.Priority {
			merged[n-1].end = c.End()
			continue
		}
		merged = append(merged, hourSpan{begin: c.Hour, end: c.End(), priority: c.Priority})
	}

	return merged
}
