package check_min_duration

import "github.com/m04kA/SMC-ApplicationRounds/internal/domain"

// Request модель запроса проверки минимальной длительности
type Request struct {
	ApplicationID int64                     // ID заявки
	Policy        *domain.AggregationPolicy // Политика агрегации; nil = политика по умолчанию
	Priority      domain.Priority           // Учитываемый приоритет; PriorityNone = любой выбранный
}

// SectionResult результат по одной секции
type SectionResult struct {
	SectionID          int64
	Name               string
	MinDurationSeconds int64
	SelectedHours      int
	UnderMinimum       bool
}

// Response модель ответа
type Response struct {
	ApplicationID int64
	Policy        domain.AggregationPolicy
	Priority      domain.Priority
	Sections      []SectionResult // В порядке position
	UnderMinimum  []int           // Индексы секций с недостаточной длительностью
}
