// internal/logger/logger.go

// Package logger is the structured logging contract used by every netpanel component.
//
// Components never talk to a concrete logging backend. They receive a Logger through
// their Config (or fall back to GetLogger) and attach context with With.
//
// Levels:
//
//   - DebugLevel: per-chunk receive traces, per-frame panel dumps.
//   - InfoLevel:  state transitions and sequence banners.
//   - WarnLevel:  recoverable anomalies (panel draw failure, pacer overrun).
//   - ErrorLevel: fetch failures and display acquisition faults.
//   - FatalLevel: startup faults; the process exits.
package logger

import (
	"fmt"
	"strings"
)

// Level is the logging severity.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel logs a message, then calls os.Exit(1).
	FatalLevel
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	}
	return InfoLevel, fmt.Errorf("logger: unknown level %q", s)
}

// Logger defines the logging methods used across netpanel.
// keysAndValues are alternating slog-style key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at error severity and then calls os.Exit(1).
	Fatal(msg string, keysAndValues ...any)
	// With creates a child logger carrying extra key/value context.
	// The parent is not affected.
	With(keyValues ...any) Logger
	Level() Level
	SetLevel(level Level)
}
