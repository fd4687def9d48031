package get_allocation_capacity

import (
	"context"

	getAllocationCapacity "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/get_allocation_capacity"
)

type GetAllocationCapacityUseCase interface {
	Execute(ctx context.Context, req *getAllocationCapacity.Request) (*getAllocationCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
