package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger логгер приложения: stderr + файл с ротацией
type Logger struct {
	l    *log.Logger
	file *lumberjack.Logger
}

// New создает логгер. Если filePath пустой, пишет только в stderr.
// level: debug, info, warn, error
func New(filePath string, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		writer io.Writer = os.Stderr
		file   *lumberjack.Logger
	)

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, file)
	}

	return &Logger{
		l: log.NewWithOptions(writer, log.Options{
			ReportTimestamp: true,
			Level:           lvl,
			Prefix:          "application-rounds",
		}),
		file: file,
	}, nil
}

// NewDiscard логгер, который ничего не пишет (для тестов)
func NewDiscard() *Logger {
	return &Logger{l: log.NewWithOptions(io.Discard, log.Options{})}
}

// Debug логирует отладочное сообщение
func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.l.Debugf(format, v...)
}

// Info логирует информационное сообщение
func (lg *Logger) Info(format string, v ...interface{}) {
	lg.l.Infof(format, v...)
}

// Warn логирует предупреждение
func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.l.Warnf(format, v...)
}

// Error логирует ошибку
func (lg *Logger) Error(format string, v ...interface{}) {
	lg.l.Errorf(format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.Close()
	lg.l.Fatalf(format, v...)
}

// Close закрывает файл лога
func (lg *Logger) Close() error {
	if lg.file == nil {
		return nil
	}
	return lg.file.Close()
}
