package schedule

import "errors"

var (
	// ErrInvalidDay возвращается, когда день недели вне диапазона 0..6.
	// Это ошибка целостности данных выше по потоку, а не пользовательская
	ErrInvalidDay = errors.New("schedule: day index out of range")

	// ErrInvalidTime возвращается при некорректном времени интервала
	ErrInvalidTime = errors.New("schedule: invalid time")

	// ErrInvalidWindow возвращается при некорректном окне сетки
	ErrInvalidWindow = errors.New("schedule: invalid grid window")

	// ErrUnknownPolicy возвращается при неизвестной политике агрегации
	ErrUnknownPolicy = errors.New("schedule: unknown aggregation policy")

	// ErrInvalidPeriod возвращается, когда период серии задан некорректно
	ErrInvalidPeriod = errors.New("schedule: invalid period")

	// ErrTooManyOccurrences возвращается, когда серия разворачивается в слишком много вхождений
	ErrTooManyOccurrences = errors.New("schedule: too many occurrences")
)
