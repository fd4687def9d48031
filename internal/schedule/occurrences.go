package schedule

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

const defaultMaxOccurrences = 5000

// день сетки (0 = понедельник) -> день недели rrule
var weekdays = [domain.DaysInWeek]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// Series параметры развёртывания недельного расписания в конкретные вхождения
type Series struct {
	Period       domain.Period
	Location     *time.Location // nil = time.Local
	BufferBefore time.Duration
	BufferAfter  time.Duration

	// MaxOccurrences ограничение на общее число вхождений; 0 = defaultMaxOccurrences
	MaxOccurrences int
}

// ExpandOccurrences разворачивает недельные интервалы в вхождения внутри периода
// (даты включительно). Каждый интервал повторяется еженедельно в свой день недели.
// Результат отсортирован по времени начала
func ExpandOccurrences(ranges []domain.TimeRange, series Series) ([]domain.CollisionInterval, error) {
	loc := series.Location
	if loc == nil {
		loc = time.Local
	}
	limit := series.MaxOccurrences
	if limit <= 0 {
		limit = defaultMaxOccurrences
	}

	periodBegin := dateIn(series.Period.Begin, loc)
	periodEnd := dateIn(series.Period.End, loc).AddDate(0, 0, 1)
	if !periodEnd.After(periodBegin) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidPeriod,
			series.Period.Begin.Format(domain.DateFormat), series.Period.End.Format(domain.DateFormat))
	}

	occurrences := make([]domain.CollisionInterval, 0)

	for i, r := range ranges {
		if r.Day < 0 || r.Day >= domain.DaysInWeek {
			return nil, fmt.Errorf("%w: range #%d has day %d", ErrInvalidDay, i, r.Day)
		}
		beginMinutes, err := r.BeginTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: range #%d begin %q", ErrInvalidTime, i, r.BeginTime)
		}
		endMinutes, err := r.EndTime.EndMinutes()
		if err != nil || endMinutes <= beginMinutes {
			return nil, fmt.Errorf("%w: range #%d end %q", ErrInvalidTime, i, r.EndTime)
		}
		duration := time.Duration(endMinutes-beginMinutes) * time.Minute

		dtstart := time.Date(periodBegin.Year(), periodBegin.Month(), periodBegin.Day(),
			beginMinutes/60, beginMinutes%60, 0, 0, loc)

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{weekdays[r.Day]},
			Dtstart:   dtstart,
			Until:     periodEnd,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: range #%d: %v", ErrInvalidPeriod, i, err)
		}

		for _, start := range rule.Between(periodBegin, periodEnd, true) {
			if !start.Before(periodEnd) {
				continue
			}
			occurrences = append(occurrences, domain.CollisionInterval{
				Start:        start,
				End:          start.Add(duration),
				BufferBefore: series.BufferBefore,
				BufferAfter:  series.BufferAfter,
				Type:         domain.ReservationTypeSeasonal,
			})
			if len(occurrences) > limit {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyOccurrences, limit)
			}
		}
	}

	slices.SortStableFunc(occurrences, func(a, b domain.CollisionInterval) int {
		return cmp.Compare(a.Start.UnixNano(), b.Start.UnixNano())
	})

	return occurrences, nil
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
