package check_collisions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	reservationUnitRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/reservationunit"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/ptr"
)

type fakeUnitRepo struct {
	units map[int64]*domain.ReservationUnit
}

func (f *fakeUnitRepo) GetByID(_ context.Context, id int64) (*domain.ReservationUnit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, reservationUnitRepo.ErrReservationUnitNotFound
	}
	return u, nil
}

type fakeReservationRepo struct {
	reservations []domain.Reservation
	err          error
	from, to     time.Time
	calls        int
}

func (f *fakeReservationRepo) GetByUnitInPeriod(_ context.Context, _ int64, from, to time.Time) ([]domain.Reservation, error) {
	f.calls++
	f.from, f.to = from, to
	return f.reservations, f.err
}

type fakeMetrics struct {
	collisions int
}

func (f *fakeMetrics) RecordCollisions(n int) {
	f.collisions += n
}

// 2026-03-02 - понедельник
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

func fixtures() (*fakeUnitRepo, *fakeReservationRepo) {
	units := &fakeUnitRepo{units: map[int64]*domain.ReservationUnit{
		1: {ID: 1, Name: "Hall A", BufferAfter: 15 * time.Minute},
	}}
	reservations := &fakeReservationRepo{reservations: []domain.Reservation{
		{ID: 100, Begin: at(2, 11, 10), End: at(2, 12, 0), Type: domain.ReservationTypeNormal},
		{ID: 101, Begin: at(9, 18, 30), End: at(9, 19, 30), Type: domain.ReservationTypeBlocked,
			BufferBefore: time.Hour, BufferAfter: time.Hour},
		{ID: 102, Begin: at(16, 18, 0), End: at(16, 19, 0), Type: domain.ReservationTypeSeasonal, SeriesID: ptr.Ptr(int64(77))},
	}}
	return units, reservations
}

func newUseCase(units *fakeUnitRepo, reservations *fakeReservationRepo, m *fakeMetrics) *UseCase {
	return NewUseCase(units, reservations, time.UTC, m, logger.NewDiscard())
}

func TestExecute_ExplicitCandidateUsesUnitBuffers(t *testing.T) {
	units, reservations := fixtures()
	m := &fakeMetrics{}

	resp, err := newUseCase(units, reservations, m).Execute(context.Background(), &Request{
		ReservationUnitID: 1,
		Candidates: []Candidate{
			{Begin: at(2, 10, 0), End: at(2, 11, 0)}, // буфер 15 минут заходит на 11:10
			{Begin: at(2, 8, 0), End: at(2, 9, 0)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CandidatesChecked)
	require.Len(t, resp.Collisions, 1)
	assert.Equal(t, 0, resp.Collisions[0].CandidateIndex)
	assert.Equal(t, int64(100), resp.Collisions[0].ReservationID)
	assert.Equal(t, 1, m.collisions)

	assert.Equal(t, at(2, 8, 0).Add(-domain.CollisionSearchMargin), reservations.from)
	assert.Equal(t, at(2, 11, 0).Add(domain.CollisionSearchMargin), reservations.to)
}

func TestExecute_SeriesAgainstBlockedAndOwnSeries(t *testing.T) {
	units, reservations := fixtures()

	req := &Request{
		ReservationUnitID: 1,
		Series: &Series{
			Ranges: []domain.TimeRange{{Day: 0, BeginTime: "17:00", EndTime: "18:00", Priority: domain.PriorityPrimary}},
			Period: domain.Period{Begin: at(2, 0, 0), End: at(22, 0, 0)},
		},
	}

	resp, err := newUseCase(units, reservations, &fakeMetrics{}).Execute(context.Background(), req)
	require.NoError(t, err)

	// 3 понедельника; блокировка 18:30 без буферов не мешает, сезонная 18:00 задета буфером 15 минут
	assert.Equal(t, 3, resp.CandidatesChecked)
	require.Len(t, resp.Collisions, 1)
	assert.Equal(t, 2, resp.Collisions[0].CandidateIndex)
	assert.Equal(t, int64(102), resp.Collisions[0].ReservationID)
	assert.Equal(t, at(16, 17, 0), resp.Collisions[0].CandidateBegin)

	req.IgnoreSeriesID = ptr.Ptr(int64(77))
	resp, err = newUseCase(units, reservations, &fakeMetrics{}).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Collisions)
}

func TestExecute_SeriesWithoutOccurrences(t *testing.T) {
	units, reservations := fixtures()

	resp, err := newUseCase(units, reservations, &fakeMetrics{}).Execute(context.Background(), &Request{
		ReservationUnitID: 1,
		Series: &Series{
			Ranges: []domain.TimeRange{{Day: 0, BeginTime: "17:00", EndTime: "18:00", Priority: domain.PriorityPrimary}},
			Period: domain.Period{Begin: at(3, 0, 0), End: at(4, 0, 0)},
		},
	})
	require.NoError(t, err)

	assert.Zero(t, resp.CandidatesChecked)
	assert.Empty(t, resp.Collisions)
	assert.Zero(t, reservations.calls)
}

func TestExecute_Errors(t *testing.T) {
	badSeries := &Series{
		Ranges: []domain.TimeRange{{Day: 9, BeginTime: "17:00", EndTime: "18:00"}},
		Period: domain.Period{Begin: at(2, 0, 0), End: at(8, 0, 0)},
	}
	longSeries := &Series{
		Ranges: []domain.TimeRange{{Day: 0, BeginTime: "17:00", EndTime: "18:00"}},
		Period: domain.Period{Begin: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2060, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	cases := []struct {
		name    string
		req     *Request
		repoErr error
		wantErr error
	}{
		{name: "no unit", req: &Request{Candidates: []Candidate{{Begin: at(2, 8, 0), End: at(2, 9, 0)}}}, wantErr: ErrInvalidInput},
		{name: "nothing to check", req: &Request{ReservationUnitID: 1}, wantErr: ErrInvalidInput},
		{name: "reversed candidate", req: &Request{ReservationUnitID: 1, Candidates: []Candidate{{Begin: at(2, 9, 0), End: at(2, 8, 0)}}}, wantErr: ErrInvalidInput},
		{name: "empty series", req: &Request{ReservationUnitID: 1, Series: &Series{}}, wantErr: ErrInvalidInput},
		{name: "invalid series day", req: &Request{ReservationUnitID: 1, Series: badSeries}, wantErr: ErrInvalidInput},
		{name: "series too long", req: &Request{ReservationUnitID: 1, Series: longSeries}, wantErr: ErrTooManyCandidates},
		{name: "unit not found", req: &Request{ReservationUnitID: 2, Candidates: []Candidate{{Begin: at(2, 8, 0), End: at(2, 9, 0)}}}, wantErr: ErrReservationUnitNotFound},
		{
			name:    "reservations fail",
			req:     &Request{ReservationUnitID: 1, Candidates: []Candidate{{Begin: at(2, 8, 0), End: at(2, 9, 0)}}},
			repoErr: errors.New("db down"),
			wantErr: ErrInternal,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			units, reservations := fixtures()
			reservations.err = c.repoErr

			_, err := newUseCase(units, reservations, &fakeMetrics{}).Execute(context.Background(), c.req)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}
