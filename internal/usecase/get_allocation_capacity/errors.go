package get_allocation_capacity

import "errors"

var (
	// ErrRoundNotFound возвращается, когда раунд заявок не найден
	ErrRoundNotFound = errors.New("get_allocation_capacity: application round not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_allocation_capacity: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_allocation_capacity: internal error")
)
