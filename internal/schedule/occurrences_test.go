package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandOccurrences_Weekly(t *testing.T) {
	// 2026-03-02 is a Monday
	series := Series{
		Period:      domain.Period{Begin: date(2026, 3, 2), End: date(2026, 3, 22)},
		Location:    time.UTC,
		BufferAfter: 15 * time.Minute,
	}
	ranges := []domain.TimeRange{
		tr(0, "18:00", "20:00", domain.PriorityPrimary), // Monday
		tr(6, "22:00", "00:00", domain.PriorityPrimary), // Sunday, to midnight
	}

	got, err := ExpandOccurrences(ranges, series)
	require.NoError(t, err)
	require.Len(t, got, 6)

	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC), got[0].End)
	assert.Equal(t, 15*time.Minute, got[0].BufferAfter)
	assert.Equal(t, domain.ReservationTypeSeasonal, got[0].Type)

	assert.Equal(t, time.Date(2026, 3, 8, 22, 0, 0, 0, time.UTC), got[1].Start)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got[1].End)

	last := got[len(got)-1]
	assert.Equal(t, time.Date(2026, 3, 22, 22, 0, 0, 0, time.UTC), last.Start)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Start.Before(got[i-1].Start), "occurrences must be sorted")
	}
}

func TestExpandOccurrences_PeriodStartsMidWeek(t *testing.T) {
	series := Series{Period: domain.Period{Begin: date(2026, 3, 4), End: date(2026, 3, 10)}, Location: time.UTC}

	got, err := ExpandOccurrences([]domain.TimeRange{tr(0, "10:00", "11:00", domain.PriorityPrimary)}, series)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), got[0].Start)
}

func TestExpandOccurrences_Errors(t *testing.T) {
	valid := Series{Period: domain.Period{Begin: date(2026, 3, 2), End: date(2026, 3, 8)}, Location: time.UTC}

	_, err := ExpandOccurrences([]domain.TimeRange{tr(0, "10:00", "11:00", domain.PriorityPrimary)},
		Series{Period: domain.Period{Begin: date(2026, 3, 8), End: date(2026, 3, 2)}})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ExpandOccurrences([]domain.TimeRange{tr(9, "10:00", "11:00", domain.PriorityPrimary)}, valid)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = ExpandOccurrences([]domain.TimeRange{tr(0, "12:00", "11:00", domain.PriorityPrimary)}, valid)
	assert.ErrorIs(t, err, ErrInvalidTime)

	limited := valid
	limited.Period.End = date(2026, 6, 1)
	limited.MaxOccurrences = 3
	_, err = ExpandOccurrences([]domain.TimeRange{tr(0, "10:00", "11:00", domain.PriorityPrimary)}, limited)
	assert.ErrorIs(t, err, ErrTooManyOccurrences)
}
