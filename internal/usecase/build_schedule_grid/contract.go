package build_schedule_grid

import (
	"context"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// SectionRepository интерфейс репозитория секций заявок
type SectionRepository interface {
	GetSectionByID(ctx context.Context, id int64) (*domain.ApplicationSection, error)
	GetSuitableTimeRanges(ctx context.Context, sectionIDs []int64) (map[int64][]domain.TimeRange, error)
}

// OpeningHoursProvider интерфейс источника часов работы помещения (кэш или репозиторий)
type OpeningHoursProvider interface {
	GetOpeningHours(ctx context.Context, unitID int64) (*domain.OpeningHours, error)
}

// MetricsRecorder интерфейс доменных метрик
type MetricsRecorder interface {
	RecordConversion(direction string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
