package save_schedule_grid

import (
	"context"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// SectionRepository интерфейс репозитория секций заявок
type SectionRepository interface {
	GetSectionByID(ctx context.Context, id int64) (*domain.ApplicationSection, error)
	ReplaceSuitableTimeRanges(ctx context.Context, sectionID int64, ranges []domain.TimeRange) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс доменных метрик
type MetricsRecorder interface {
	RecordConversion(direction string)
	RecordUnderMinimum(policy string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
