package save_schedule_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	applicationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/application"
	"github.com/m04kA/SMC-ApplicationRounds/internal/schedule"
)

// UseCase use case для сохранения сетки секции в виде интервалов
type UseCase struct {
	sectionRepo SectionRepository
	txManager   TransactionManager
	window      domain.Window
	policy      domain.AggregationPolicy
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sectionRepo SectionRepository,
	txManager TransactionManager,
	window domain.Window,
	policy domain.AggregationPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sectionRepo: sectionRepo,
		txManager:   txManager,
		window:      window,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute сворачивает сетку в интервалы и заменяет ими интервалы секции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveScheduleGrid: section=%d, user=%d", req.SectionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.window); err != nil {
		uc.logger.Warn("SaveScheduleGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Сворачиваем сетку в интервалы
	ranges := schedule.CellsToRanges(req.Grid)
	uc.metrics.RecordConversion("to_ranges")

	// 3. Считаем выбранные часы по политике
	hours, err := schedule.SelectedHoursPerSchedule([]domain.Grid{req.Grid}, domain.PriorityNone, uc.policy)
	if err != nil {
		uc.logger.Error("SaveScheduleGrid: failed to aggregate hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var section *domain.ApplicationSection

	// 4. Заменяем интервалы секции в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.sectionRepo.GetSectionByID(txCtx, req.SectionID)
		if err != nil {
			if errors.Is(err, applicationRepo.ErrSectionNotFound) {
				uc.logger.Warn("SaveScheduleGrid: section id=%d not found", req.SectionID)
				return ErrSectionNotFound
			}
			uc.logger.Error("SaveScheduleGrid: failed to get section id=%d: %v", req.SectionID, err)
			return fmt.Errorf("%w: failed to get section: %v", ErrInternal, err)
		}
		section = s

		if err := uc.sectionRepo.ReplaceSuitableTimeRanges(txCtx, req.SectionID, ranges); err != nil {
			uc.logger.Error("SaveScheduleGrid: failed to replace ranges of section id=%d: %v", req.SectionID, err)
			return fmt.Errorf("%w: failed to replace suitable time ranges: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("SaveScheduleGrid: transaction failed for section id=%d: %v", req.SectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Проверяем минимальную длительность
	under := schedule.FindUnderMinimumDuration([]int64{section.MinDurationSeconds}, hours)
	uc.metrics.RecordUnderMinimum(string(uc.policy), len(under))

	uc.logger.Info("SaveScheduleGrid: saved %d ranges for section id=%d, selected_hours=%d, under_minimum=%t",
		len(ranges), req.SectionID, hours[0], len(under) > 0)

	return &Response{
		SectionID:     req.SectionID,
		Ranges:        ranges,
		Policy:        uc.policy,
		SelectedHours: hours[0],
		UnderMinimum:  len(under) > 0,
	}, nil
}
