package slogutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// FormatHuman selects LineHandler output.
	FormatHuman = "human"
	// FormatJSON selects slog's JSON handler.
	FormatJSON = "json"
)

// levelSilent is above every standard level.
const levelSilent = slog.Level(100)

// NewFormattedLogger creates a logger in the given format ("human" or "json").
// Unknown formats fall back to human.
func NewFormattedLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(NewLineHandler(w, opts))
}

// NewFileLogger creates a logger that appends to path, creating it if needed.
// The caller closes the returned file.
func NewFileLogger(path string, level slog.Level, format string) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewFormattedLogger(f, level, format), f, nil
}

// NewDiscardLogger creates a logger that discards all output.
func NewDiscardLogger() *slog.Logger {
	return slog.New(NewLineHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

// LevelFromString converts debug, info, warn or error (any case) to a
// slog.Level. Anything else is info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity converts CLI verbosity flags to a level override:
// quiet silences everything, -v is info and -vv or more is debug. It
// returns nil when neither flag is set so the configured level applies.
func LevelFromVerbosity(verbosity int, quiet bool) *slog.Level {
	var level slog.Level
	switch {
	case quiet:
		level = levelSilent
	case verbosity <= 0:
		return nil
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	return &level
}
