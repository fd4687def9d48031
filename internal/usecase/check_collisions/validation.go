package check_collisions

import "fmt"

const maxCandidates = 2000

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationUnitID <= 0 {
		return fmt.Errorf("%w: reservationUnitID must be positive", ErrInvalidInput)
	}

	if len(req.Candidates) == 0 && req.Series == nil {
		return fmt.Errorf("%w: candidates or series are required", ErrInvalidInput)
	}

	if len(req.Candidates) > maxCandidates {
		return fmt.Errorf("%w: %d candidates, at most %d allowed", ErrTooManyCandidates, len(req.Candidates), maxCandidates)
	}

	for i, c := range req.Candidates {
		if c.Begin.IsZero() || c.End.IsZero() {
			return fmt.Errorf("%w: candidate #%d: begin and end are required", ErrInvalidInput, i)
		}
		if !c.Begin.Before(c.End) {
			return fmt.Errorf("%w: candidate #%d: begin must be before end", ErrInvalidInput, i)
		}
	}

	if req.Series != nil && len(req.Series.Ranges) == 0 {
		return fmt.Errorf("%w: series has no ranges", ErrInvalidInput)
	}

	return nil
}
