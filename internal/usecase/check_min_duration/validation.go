package check_min_duration

import (
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApplicationID <= 0 {
		return fmt.Errorf("%w: applicationID must be positive", ErrInvalidInput)
	}

	if req.Policy != nil {
		if _, err := domain.ParseAggregationPolicy(string(*req.Policy)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if !req.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %d", ErrInvalidInput, req.Priority)
	}

	return nil
}
