package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog.Logger and tags every record with the component that
// emitted it.
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// New creates a logger writing text records to cfg.Output (stderr when nil).
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	component := cfg.Component
	if component == "" {
		component = "worktimer"
	}
	base := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level}))
	return &Logger{
		Logger:    base.With("component", component),
		base:      base,
		component: component,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(Config{Output: io.Discard, Level: slog.LevelError + 1})
}

// OpenFile appends log records to path, creating parent directories as needed.
// The returned closer releases the file.
func OpenFile(path string, level slog.Level) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(Config{Level: level, Output: f}), f, nil
}

// WithComponent returns a child logger for a specific component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With("component", component),
		base:      l.base,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", value)
	}
}
