package check_collisions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// ReservationUnitRepository интерфейс репозитория помещений
type ReservationUnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationUnit, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByUnitInPeriod(ctx context.Context, unitID int64, from, to time.Time) ([]domain.Reservation, error)
}

// MetricsRecorder интерфейс доменных метрик
type MetricsRecorder interface {
	RecordCollisions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
