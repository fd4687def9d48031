package save_schedule_grid

import "github.com/m04kA/SMC-ApplicationRounds/internal/domain"

// Request модель запроса на сохранение сетки секции
type Request struct {
	SectionID int64       // ID секции заявки
	UserID    int64       // ID пользователя, сохраняющего сетку
	Grid      domain.Grid // Сетка 7 дней; доступность ячеек игнорируется
}

// Response модель ответа с сохранёнными интервалами
type Response struct {
	SectionID     int64
	Ranges        []domain.TimeRange
	Policy        domain.AggregationPolicy
	SelectedHours int  // Выбранные часы по политике Policy
	UnderMinimum  bool // Выбранных часов меньше минимальной длительности секции
}
