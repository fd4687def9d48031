package schedule

import "github.com/m04kA/SMC-ApplicationRounds/internal/domain"

// IntervalsCollide проверяет пересечение двух интервалов с учётом буферов.
//
// Буфер на границе общий: между концом A и началом B должен поместиться
// больший из A.BufferAfter и B.BufferBefore, а не их сумма. Касание без
// буферов пересечением не считается.
//
// Интервалы должны быть корректными (Start <= End); для перевёрнутых
// интервалов результат не определён.
func IntervalsCollide(a, b domain.CollisionInterval) bool {
	aEndBuffer := max(a.BufferAfter, b.BufferBefore)
	bEndBuffer := max(a.BufferBefore, b.BufferAfter)

	// A целиком раньше B с запасом
	if a.Start.Before(b.Start) && !a.End.Add(aEndBuffer).After(b.Start) {
		return false
	}

	// A целиком позже B с запасом
	if !a.Start.Before(b.End.Add(bEndBuffer)) && a.End.After(b.End) {
		return false
	}

	return true
}

// NewCollisionInterval строит интервал из сохранённого бронирования.
// У блокирующих бронирований буферов нет независимо от настроек
func NewCollisionInterval(r domain.Reservation) domain.CollisionInterval {
	interval := domain.CollisionInterval{
		Start:        r.Begin,
		End:          r.End,
		BufferBefore: r.BufferBefore,
		BufferAfter:  r.BufferAfter,
		Type:         r.Type,
		SeriesID:     r.SeriesID,
	}
	if r.Type.IsBlocked() {
		interval.BufferBefore = 0
		interval.BufferAfter = 0
	}
	return interval
}

// FindCollisions возвращает индексы интервалов existing, пересекающихся с candidate
func FindCollisions(candidate domain.CollisionInterval, existing []domain.CollisionInterval) []int {
	indices := make([]int, 0)
	for i, other := range existing {
		if IntervalsCollide(candidate, other) {
			indices = append(indices, i)
		}
	}
	return indices
}
