package save_schedule_grid

import "errors"

var (
	// ErrSectionNotFound возвращается, когда секция заявки не найдена
	ErrSectionNotFound = errors.New("save_schedule_grid: application section not found")

	// ErrInvalidGrid возвращается, когда сетка содержит часы вне окна или неизвестный приоритет
	ErrInvalidGrid = errors.New("save_schedule_grid: invalid grid")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_schedule_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_schedule_grid: internal error")
)
