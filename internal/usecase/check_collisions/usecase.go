package check_collisions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	reservationUnitRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/reservationunit"
	"github.com/m04kA/SMC-ApplicationRounds/internal/schedule"
)

// UseCase use case для проверки пересечений с существующими бронированиями
type UseCase struct {
	unitRepo        ReservationUnitRepository
	reservationRepo ReservationRepository
	location        *time.Location
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс, в котором разворачиваются недельные серии
func NewUseCase(
	unitRepo ReservationUnitRepository,
	reservationRepo ReservationRepository,
	location *time.Location,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		unitRepo:        unitRepo,
		reservationRepo: reservationRepo,
		location:        location,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute проверяет кандидатов на пересечение с бронированиями помещения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCollisions: unit=%d, candidates=%d, series=%t",
		req.ReservationUnitID, len(req.Candidates), req.Series != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCollisions: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем помещение (буферы для кандидатов)
	unit, err := uc.unitRepo.GetByID(ctx, req.ReservationUnitID)
	if err != nil {
		if errors.Is(err, reservationUnitRepo.ErrReservationUnitNotFound) {
			uc.logger.Warn("CheckCollisions: reservation unit id=%d not found", req.ReservationUnitID)
			return nil, ErrReservationUnitNotFound
		}
		uc.logger.Error("CheckCollisions: failed to get reservation unit id=%d: %v", req.ReservationUnitID, err)
		return nil, fmt.Errorf("%w: failed to get reservation unit: %v", ErrInternal, err)
	}

	// 3. Собираем кандидатов
	candidates, err := uc.buildCandidates(req, unit)
	if err != nil {
		uc.logger.Warn("CheckCollisions: failed to build candidates: %v", err)
		return nil, err
	}

	if len(candidates) == 0 {
		uc.logger.Info("CheckCollisions: unit id=%d, series has no occurrences in period", req.ReservationUnitID)
		return &Response{ReservationUnitID: req.ReservationUnitID, Collisions: []Collision{}}, nil
	}

	// 4. Загружаем бронирования в расширенном окне
	from, to := searchWindow(candidates)
	reservations, err := uc.reservationRepo.GetByUnitInPeriod(ctx, req.ReservationUnitID, from, to)
	if err != nil {
		uc.logger.Error("CheckCollisions: failed to get reservations of unit id=%d: %v", req.ReservationUnitID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	existing := make([]domain.CollisionInterval, 0, len(reservations))
	kept := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if req.IgnoreSeriesID != nil && r.SeriesID != nil && *r.SeriesID == *req.IgnoreSeriesID {
			continue
		}
		existing = append(existing, schedule.NewCollisionInterval(r))
		kept = append(kept, r)
	}

	// 5. Ищем пересечения
	collisions := make([]Collision, 0)
	for i, c := range candidates {
		for _, j := range schedule.FindCollisions(c, existing) {
			collisions = append(collisions, Collision{
				CandidateIndex:   i,
				CandidateBegin:   c.Start,
				CandidateEnd:     c.End,
				ReservationID:    kept[j].ID,
				ReservationBegin: kept[j].Begin,
				ReservationEnd:   kept[j].End,
				ReservationType:  kept[j].Type,
			})
		}
	}
	uc.metrics.RecordCollisions(len(collisions))

	uc.logger.Info("CheckCollisions: unit id=%d, checked=%d, existing=%d, collisions=%d",
		req.ReservationUnitID, len(candidates), len(existing), len(collisions))

	return &Response{
		ReservationUnitID: req.ReservationUnitID,
		CandidatesChecked: len(candidates),
		Collisions:        collisions,
	}, nil
}

// buildCandidates собирает явных кандидатов и вхождения серии в один список
func (uc *UseCase) buildCandidates(req *Request, unit *domain.ReservationUnit) ([]domain.CollisionInterval, error) {
	candidates := make([]domain.CollisionInterval, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		candidates = append(candidates, domain.CollisionInterval{
			Start:        c.Begin,
			End:          c.End,
			BufferBefore: unit.BufferBefore,
			BufferAfter:  unit.BufferAfter,
			Type:         domain.ReservationTypeNormal,
		})
	}

	if req.Series == nil {
		return candidates, nil
	}

	limit := maxCandidates - len(candidates)
	if limit <= 0 {
		return nil, fmt.Errorf("%w: no room left for series occurrences", ErrTooManyCandidates)
	}

	occurrences, err := schedule.ExpandOccurrences(req.Series.Ranges, schedule.Series{
		Period:         req.Series.Period,
		Location:       uc.location,
		BufferBefore:   unit.BufferBefore,
		BufferAfter:    unit.BufferAfter,
		MaxOccurrences: limit,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrTooManyOccurrences) {
			return nil, fmt.Errorf("%w: %v", ErrTooManyCandidates, err)
		}
		return nil, fmt.Errorf("%w: series: %v", ErrInvalidInput, err)
	}

	return append(candidates, occurrences...), nil
}

// searchWindow окно поиска бронирований: от самого раннего начала до самого позднего конца
// кандидатов, расширенное на domain.CollisionSearchMargin
func searchWindow(candidates []domain.CollisionInterval) (time.Time, time.Time) {
	if len(candidates) == 0 {
		return time.Time{}, time.Time{}
	}

	from, to := candidates[0].Start, candidates[0].End
	for _, c := range candidates[1:] {
		if c.Start.Before(from) {
			from = c.Start
		}
		if c.End.After(to) {
			to = c.End
		}
	}

	return from.Add(-domain.CollisionSearchMargin), to.Add(domain.CollisionSearchMargin)
}
