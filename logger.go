package mtstat

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with analysis-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithRegion adds a region field to the logger.
func (l *Logger) WithRegion(region string) *Logger {
	return &Logger{Logger: l.Logger.With("region", region)}
}

// WithEnd adds a filament-end field to the logger.
func (l *Logger) WithEnd(end int) *Logger {
	return &Logger{Logger: l.Logger.With("end", end)}
}

// WithPattern adds a pattern field to the logger.
func (l *Logger) WithPattern(name string) *Logger {
	return &Logger{Logger: l.Logger.With("pattern", name)}
}

// LogCatalog logs the construction of a region catalog.
func (l *Logger) LogCatalog(region string, patterns int, d time.Duration, err error) {
	if err != nil {
		l.Error("catalog build failed",
			"region", region,
			"error", err,
		)
		return
	}
	l.Debug("catalog built",
		"region", region,
		"patterns", patterns,
		"duration", d,
	)
}
