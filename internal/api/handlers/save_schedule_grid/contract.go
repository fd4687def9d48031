package save_schedule_grid

import (
	"context"

	saveScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/save_schedule_grid"
)

type SaveScheduleGridUseCase interface {
	Execute(ctx context.Context, req *saveScheduleGrid.Request) (*saveScheduleGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
