package vecslice

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecslice-specific helpers.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogEnsureMutable logs a clone arbitration outcome.
func (l *Logger) LogEnsureMutable(length int, cloned bool) {
	l.Debug("ensure mutable completed",
		"length", length,
		"cloned", cloned,
	)
}

// LogResolve logs a location resolution.
func (l *Logger) LogResolve(length, resolved int, err error) {
	if err != nil {
		l.Error("resolve failed",
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("resolve completed",
			"length", length,
			"resolved", resolved,
		)
	}
}

// LogSlice logs a slice operation.
func (l *Logger) LogSlice(length, selected int, err error) {
	if err != nil {
		l.Error("slice failed",
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("slice completed",
			"length", length,
			"selected", selected,
		)
	}
}

// LogAssign logs an assign operation.
func (l *Logger) LogAssign(length, assigned int, cloned bool, err error) {
	if err != nil {
		l.Error("assign failed",
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("assign completed",
			"length", length,
			"assigned", assigned,
			"cloned", cloned,
		)
	}
}
