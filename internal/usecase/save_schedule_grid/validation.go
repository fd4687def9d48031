package save_schedule_grid

import (
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, window domain.Window) error {
	if req.SectionID <= 0 {
		return fmt.Errorf("%w: sectionID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return validateGrid(req.Grid, window)
}

// validateGrid проверяет, что ячейки лежат в окне сетки, не повторяются и имеют известный приоритет
func validateGrid(grid domain.Grid, window domain.Window) error {
	for day, cells := range grid {
		seen := make(map[int]struct{}, len(cells))
		for _, c := range cells {
			if !window.Contains(c.Hour) {
				return fmt.Errorf("%w: day %d hour %d is outside %d-%d", ErrInvalidGrid, day, c.Hour, window.FirstHour, window.LastHour)
			}
			if _, dup := seen[c.Hour]; dup {
				return fmt.Errorf("%w: day %d hour %d is duplicated", ErrInvalidGrid, day, c.Hour)
			}
			seen[c.Hour] = struct{}{}

			if !c.Priority.IsValid() {
				return fmt.Errorf("%w: day %d hour %d has unknown priority %d", ErrInvalidGrid, day, c.Hour, c.Priority)
			}
		}
	}
	return nil
}
