package get_allocation_capacity

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoundID <= 0 {
		return fmt.Errorf("%w: roundID must be positive", ErrInvalidInput)
	}

	if req.ReservationUnitID != nil && *req.ReservationUnitID <= 0 {
		return fmt.Errorf("%w: reservationUnitID must be positive", ErrInvalidInput)
	}

	return nil
}
