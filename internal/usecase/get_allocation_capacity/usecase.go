package get_allocation_capacity

import (
	"context"
	"errors"
	"fmt"

	allocationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/allocation"
	"github.com/m04kA/SMC-ApplicationRounds/internal/schedule"
)

// UseCase use case для расчёта ёмкости распределения раунда
type UseCase struct {
	allocationRepo AllocationRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(allocationRepo AllocationRepository, logger Logger) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Execute суммирует результаты распределения раунда и сравнивает их с ёмкостью раунда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAllocationCapacity: round=%d", req.RoundID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAllocationCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем раунд
	round, err := uc.allocationRepo.GetRound(ctx, req.RoundID)
	if err != nil {
		if errors.Is(err, allocationRepo.ErrRoundNotFound) {
			uc.logger.Warn("GetAllocationCapacity: round id=%d not found", req.RoundID)
			return nil, ErrRoundNotFound
		}
		uc.logger.Error("GetAllocationCapacity: failed to get round id=%d: %v", req.RoundID, err)
		return nil, fmt.Errorf("%w: failed to get round: %v", ErrInternal, err)
	}

	// 3. Получаем результаты распределения
	results, err := uc.allocationRepo.GetResultsByRound(ctx, req.RoundID, req.ReservationUnitID)
	if err != nil {
		uc.logger.Error("GetAllocationCapacity: failed to get results of round id=%d: %v", req.RoundID, err)
		return nil, fmt.Errorf("%w: failed to get allocation results: %v", ErrInternal, err)
	}

	// 4. Считаем ёмкость
	capacity := schedule.ComputeAllocationCapacity(results, round.TotalHourCapacity, round.TotalReservationDuration)

	uc.logger.Info("GetAllocationCapacity: round id=%d, results=%d, hours=%.2f, percentage=%d",
		req.RoundID, len(results), capacity.Hours, capacity.Percentage)

	return &Response{
		RoundID:           round.ID,
		RoundName:         round.Name,
		ReservationUnitID: req.ReservationUnitID,
		Capacity:          capacity,
	}, nil
}
