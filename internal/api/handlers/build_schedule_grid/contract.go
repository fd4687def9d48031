package build_schedule_grid

import (
	"context"

	buildScheduleGrid "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/build_schedule_grid"
)

type BuildScheduleGridUseCase interface {
	Execute(ctx context.Context, req *buildScheduleGrid.Request) (*buildScheduleGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
