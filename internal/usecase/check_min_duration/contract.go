package check_min_duration

import (
	"context"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// SectionRepository интерфейс репозитория секций заявок
type SectionRepository interface {
	GetSectionsByApplication(ctx context.Context, applicationID int64) ([]*domain.ApplicationSection, error)
	GetSuitableTimeRanges(ctx context.Context, sectionIDs []int64) (map[int64][]domain.TimeRange, error)
}

// MetricsRecorder интерфейс доменных метрик
type MetricsRecorder interface {
	RecordUnderMinimum(policy string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
