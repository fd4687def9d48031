package build_schedule_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	applicationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/application"
	reservationUnitRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/reservationunit"
	"github.com/m04kA/SMC-ApplicationRounds/internal/schedule"
)

// UseCase use case для построения недельной сетки секции
type UseCase struct {
	sectionRepo  SectionRepository
	openingHours OpeningHoursProvider
	window       domain.Window
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sectionRepo SectionRepository,
	openingHours OpeningHoursProvider,
	window domain.Window,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sectionRepo:  sectionRepo,
		openingHours: openingHours,
		window:       window,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute раскладывает сохранённые интервалы секции по сетке.
// Если указано помещение, ячейки размечаются часами его работы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildScheduleGrid: section=%d", req.SectionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildScheduleGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем секцию
	if _, err := uc.sectionRepo.GetSectionByID(ctx, req.SectionID); err != nil {
		if errors.Is(err, applicationRepo.ErrSectionNotFound) {
			uc.logger.Warn("BuildScheduleGrid: section id=%d not found", req.SectionID)
			return nil, ErrSectionNotFound
		}
		uc.logger.Error("BuildScheduleGrid: failed to get section id=%d: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: failed to get section: %v", ErrInternal, err)
	}

	// 3. Получаем интервалы секции
	ranges, err := uc.sectionRepo.GetSuitableTimeRanges(ctx, []int64{req.SectionID})
	if err != nil {
		uc.logger.Error("BuildScheduleGrid: failed to get ranges of section id=%d: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: failed to get suitable time ranges: %v", ErrInternal, err)
	}

	// 4. Часы работы помещения (если указано)
	var opening *domain.OpeningHours
	if req.ReservationUnitID != nil {
		opening, err = uc.openingHours.GetOpeningHours(ctx, *req.ReservationUnitID)
		if err != nil {
			if errors.Is(err, reservationUnitRepo.ErrReservationUnitNotFound) {
				uc.logger.Warn("BuildScheduleGrid: reservation unit id=%d not found", *req.ReservationUnitID)
				return nil, ErrReservationUnitNotFound
			}
			uc.logger.Error("BuildScheduleGrid: failed to get opening hours of unit id=%d: %v", *req.ReservationUnitID, err)
			return nil, fmt.Errorf("%w: failed to get opening hours: %v", ErrInternal, err)
		}
	}

	// 5. Раскладываем интервалы по сетке
	grid, err := schedule.RangesToCells(ranges[req.SectionID], uc.window, opening)
	if err != nil {
		// некорректные данные в БД, а не ошибка клиента
		uc.logger.Error("BuildScheduleGrid: stored ranges of section id=%d are invalid: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	uc.metrics.RecordConversion("to_cells")

	uc.logger.Info("BuildScheduleGrid: built grid for section id=%d from %d ranges", req.SectionID, len(ranges[req.SectionID]))

	return &Response{
		SectionID: req.SectionID,
		Window:    uc.window,
		Grid:      grid,
	}, nil
}
