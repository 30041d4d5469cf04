package lapgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lapgo-specific context.
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

// WithRoutine adds a kernel routine name field to the logger.
func (l *Logger) WithRoutine(routine string) *Logger {
	return &Logger{
		Logger: l.Logger.With("routine", routine),
	}
}

// WithShape adds matrix shape fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogWorkspace logs the outcome of a workspace size negotiation.
func (l *Logger) LogWorkspace(routine string, layout MatrixLayout, lwork int) {
	rows, cols := layout.Dims()
	l.WithRoutine(routine).WithShape(rows, cols).Debug("workspace sized",
		"layout", layout.String(),
		"lwork", lwork,
	)
}
