package check_collisions

import "errors"

var (
	// ErrReservationUnitNotFound возвращается, когда помещение не найдено
	ErrReservationUnitNotFound = errors.New("check_collisions: reservation unit not found")

	// ErrTooManyCandidates возвращается, когда кандидатов (с учётом развёрнутой серии) слишком много
	ErrTooManyCandidates = errors.New("check_collisions: too many candidates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_collisions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_collisions: internal error")
)
