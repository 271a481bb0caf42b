// Package logger is the process-wide leveled logger.
//
// The printf-style helpers write through a log/slog handler fanout so the
// same records can reach a log file and, optionally, the systemd journal.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is the verbosity threshold used by the logger. Lower values are more
// verbose.
type Level = slog.Level

const (
	// LevelTrace enables extremely verbose logs (FSM inputs, effects).
	LevelTrace Level = slog.LevelDebug - 4
	// LevelDebug enables verbose logs intended for debugging.
	LevelDebug Level = slog.LevelDebug
	// LevelInfo enables informational logs (default).
	LevelInfo Level = slog.LevelInfo
	// LevelWarn enables only warnings and errors.
	LevelWarn Level = slog.LevelWarn
	// LevelError enables only error logs.
	LevelError Level = slog.LevelError
)

var (
	mu     sync.RWMutex
	level            = new(slog.LevelVar)
	output io.Writer = os.Stderr
	sinks  []slog.Handler
	base   = build()
)

// ParseLevel parses a log level string into a Level.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// SetOutput replaces the writer used by the text handler.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// SetLevel sets the global log level threshold.
func SetLevel(l Level) { level.Set(l) }

// Enabled reports whether a level would be emitted by the current
// configuration.
func Enabled(l Level) bool { return l >= level.Level() }

// Logger returns the structured logger behind the printf helpers.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Tracef logs at TRACE level.
func Tracef(format string, args ...any) { logf(LevelTrace, format, args...) }

// Debugf logs at DEBUG level.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Infof logs at INFO level.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warnf logs at WARN level.
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }

// Errorf logs at ERROR level.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

func logf(l Level, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	Logger().Log(context.Background(), l, fmt.Sprintf(format, args...))
}
