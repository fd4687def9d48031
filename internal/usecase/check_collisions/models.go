package check_collisions

import (
	"time"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// Candidate проверяемое бронирование
type Candidate struct {
	Begin time.Time
	End   time.Time
}

// Series недельное расписание, разворачиваемое в кандидатов на период
type Series struct {
	Ranges []domain.TimeRange
	Period domain.Period
}

// Request модель запроса проверки пересечений.
// Буферы кандидатов берутся из настроек помещения
type Request struct {
	ReservationUnitID int64
	Candidates        []Candidate
	Series            *Series
	IgnoreSeriesID    *int64 // Бронирования этой серии не считаются пересечениями
}

// Collision пересечение кандидата с существующим бронированием
type Collision struct {
	CandidateIndex   int
	CandidateBegin   time.Time
	CandidateEnd     time.Time
	ReservationID    int64
	ReservationBegin time.Time
	ReservationEnd   time.Time
	ReservationType  domain.ReservationType
}

// Response модель ответа
type Response struct {
	ReservationUnitID int64
	CandidatesChecked int
	Collisions        []Collision
}
