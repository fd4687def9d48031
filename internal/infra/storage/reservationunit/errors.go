package reservationunit

import "errors"

var (
	// ErrReservationUnitNotFound возвращается, когда помещение не найдено
	ErrReservationUnitNotFound = errors.New("reservationunit.repository: reservation unit not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservationunit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservationunit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservationunit.repository: failed to scan row")
)
