package check_min_duration

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/internal/schedule"
)

// UseCase use case для проверки минимальной длительности секций заявки
type UseCase struct {
	sectionRepo   SectionRepository
	window        domain.Window
	defaultPolicy domain.AggregationPolicy
	metrics       MetricsRecorder
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sectionRepo SectionRepository,
	window domain.Window,
	defaultPolicy domain.AggregationPolicy,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sectionRepo:   sectionRepo,
		window:        window,
		defaultPolicy: defaultPolicy,
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute считает выбранные часы каждой секции заявки и находит секции,
// у которых их меньше минимальной длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckMinDuration: validation failed: %v", err)
		return nil, err
	}

	policy := uc.defaultPolicy
	if req.Policy != nil {
		policy = *req.Policy
	}

	uc.logger.Info("CheckMinDuration: application=%d, policy=%s, priority=%s", req.ApplicationID, policy, req.Priority)

	// 2. Получаем секции заявки
	sections, err := uc.sectionRepo.GetSectionsByApplication(ctx, req.ApplicationID)
	if err != nil {
		uc.logger.Error("CheckMinDuration: failed to get sections of application id=%d: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("%w: failed to get sections: %v", ErrInternal, err)
	}
	if len(sections) == 0 {
		uc.logger.Warn("CheckMinDuration: application id=%d not found", req.ApplicationID)
		return nil, ErrApplicationNotFound
	}

	ids := make([]int64, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}

	// 3. Получаем интервалы всех секций одним запросом
	ranges, err := uc.sectionRepo.GetSuitableTimeRanges(ctx, ids)
	if err != nil {
		uc.logger.Error("CheckMinDuration: failed to get ranges of application id=%d: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("%w: failed to get suitable time ranges: %v", ErrInternal, err)
	}

	// 4. Строим сетки
	grids := make([]domain.Grid, len(sections))
	required := make([]int64, len(sections))
	for i, s := range sections {
		grid, err := schedule.RangesToCells(ranges[s.ID], uc.window, nil)
		if err != nil {
			uc.logger.Error("CheckMinDuration: stored ranges of section id=%d are invalid: %v", s.ID, err)
			return nil, fmt.Errorf("%w: section %d: %v", ErrInternal, s.ID, err)
		}
		grids[i] = grid
		required[i] = s.MinDurationSeconds
	}

	// 5. Агрегируем и сравниваем с минимумом
	hours, err := schedule.SelectedHoursPerSchedule(grids, req.Priority, policy)
	if err != nil {
		uc.logger.Error("CheckMinDuration: failed to aggregate hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	under := schedule.FindUnderMinimumDuration(required, hours)
	uc.metrics.RecordUnderMinimum(string(policy), len(under))

	results := make([]SectionResult, len(sections))
	for i, s := range sections {
		results[i] = SectionResult{
			SectionID:          s.ID,
			Name:               s.Name,
			MinDurationSeconds: s.MinDurationSeconds,
			SelectedHours:      hours[i],
		}
	}
	for _, i := range under {
		results[i].UnderMinimum = true
	}

	uc.logger.Info("CheckMinDuration: application id=%d, sections=%d, under_minimum=%d",
		req.ApplicationID, len(sections), len(under))

	return &Response{
		ApplicationID: req.ApplicationID,
		Policy:        policy,
		Priority:      req.Priority,
		Sections:      results,
		UnderMinimum:  under,
	}, nil
}
