package get_allocation_capacity

import (
	"context"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// AllocationRepository интерфейс репозитория раундов и результатов распределения
type AllocationRepository interface {
	GetRound(ctx context.Context, id int64) (*domain.ApplicationRound, error)
	GetResultsByRound(ctx context.Context, roundID int64, unitID *int64) ([]domain.AllocationResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
