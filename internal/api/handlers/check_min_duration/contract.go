package check_min_duration

import (
	"context"

	checkMinDuration "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_min_duration"
)

type CheckMinDurationUseCase interface {
	Execute(ctx context.Context, req *checkMinDuration.Request) (*checkMinDuration.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
