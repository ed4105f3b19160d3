// Package logging builds the zerolog loggers used across homes.
//
// The terminal belongs to the TUI, so diagnostics are written as JSON lines to
// a file. Components derive child loggers tagged with a "component" field.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel applies when the configured level is blank or unknown.
const DefaultLevel = zerolog.InfoLevel

// New returns a JSON logger writing to w at the named level.
func New(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to
// DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(trimmed)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// Component returns a child logger tagged with name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
