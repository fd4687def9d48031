package get_allocation_capacity

import "github.com/m04kA/SMC-ApplicationRounds/internal/domain"

// Request модель запроса ёмкости распределения
type Request struct {
	RoundID           int64  // ID раунда заявок
	ReservationUnitID *int64 // Только по этому помещению (опционально)
}

// Response модель ответа
type Response struct {
	RoundID           int64
	RoundName         string
	ReservationUnitID *int64
	Capacity          domain.AllocationCapacity
}
