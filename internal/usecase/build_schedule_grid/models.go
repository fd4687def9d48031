package build_schedule_grid

import "github.com/m04kA/SMC-ApplicationRounds/internal/domain"

// Request модель запроса сетки секции
type Request struct {
	SectionID         int64  // ID секции заявки
	ReservationUnitID *int64 // ID помещения для разметки часов работы (опционально)
}

// Response модель ответа с сеткой
type Response struct {
	SectionID int64
	Window    domain.Window
	Grid      domain.Grid
}
