package build_schedule_grid

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SectionID <= 0 {
		return fmt.Errorf("%w: sectionID must be positive", ErrInvalidInput)
	}

	if req.ReservationUnitID != nil && *req.ReservationUnitID <= 0 {
		return fmt.Errorf("%w: reservationUnitID must be positive", ErrInvalidInput)
	}

	return nil
}
