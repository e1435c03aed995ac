package kmedians

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cluster-specific context.
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
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCluster adds a cluster field to the logger.
func (l *Logger) WithCluster(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("cluster", id),
	}
}

// LogRecompute logs a centroid recomputation.
func (l *Logger) LogRecompute(points int, changed bool, err error) {
	switch {
	case err == nil:
		l.Debug("centroid recomputed",
			"points", points,
			"changed", changed,
		)
	case isDiagnostic(err):
		l.Warn("centroid not recomputed",
			"points", points,
			"error", err,
		)
	default:
		l.Error("centroid recompute failed",
			"points", points,
			"error", err,
		)
	}
}

// LogRemove logs a point removal.
func (l *Logger) LogRemove(point string, remaining int, err error) {
	if err != nil {
		l.Warn("point not removed",
			"point", point,
			"error", err,
		)
	} else {
		l.Debug("point removed",
			"point", point,
			"points", remaining,
		)
	}
}
