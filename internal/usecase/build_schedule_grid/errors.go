package build_schedule_grid

import "errors"

var (
	// ErrSectionNotFound возвращается, когда секция заявки не найдена
	ErrSectionNotFound = errors.New("build_schedule_grid: application section not found")

	// ErrReservationUnitNotFound возвращается, когда помещение не найдено
	ErrReservationUnitNotFound = errors.New("build_schedule_grid: reservation unit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_schedule_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_schedule_grid: internal error")
)
