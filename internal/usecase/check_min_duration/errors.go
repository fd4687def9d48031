package check_min_duration

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда у заявки нет секций
	ErrApplicationNotFound = errors.New("check_min_duration: application not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_min_duration: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_min_duration: internal error")
)
