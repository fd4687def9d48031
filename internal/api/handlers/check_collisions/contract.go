package check_collisions

import (
	"context"

	checkCollisions "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_collisions"
)

type CheckCollisionsUseCase interface {
	Execute(ctx context.Context, req *checkCollisions.Request) (*checkCollisions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
