package openinghours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// Client подмножество команд redis, которые использует кэш. Реализуется *redis.Client
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Source источник часов работы, обычно репозиторий помещений
type Source interface {
	GetOpeningHours(ctx context.Context, unitID int64) (*domain.OpeningHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
