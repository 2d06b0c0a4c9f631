package slogutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"route2file/internal/config"
)

// LoggerFactory builds the process logger from configuration.
// Precedence for the level: CLI flags > config > info.
type LoggerFactory struct {
	cfg      config.LoggingConfig
	cliLevel *slog.Level
	closers  []io.Closer
}

// NewLoggerFactory creates a new logger factory. cliLevel is nil when no
// CLI override was given.
func NewLoggerFactory(cfg *config.Config, cliLevel *slog.Level) *LoggerFactory {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &LoggerFactory{
		cfg:      cfg.Logging,
		cliLevel: cliLevel,
	}
}

// Logger returns a logger writing to the configured file, or to fallback
// when no file is configured. fallback must not be the MCP protocol
// stream.
func (f *LoggerFactory) Logger(fallback io.Writer) (*slog.Logger, error) {
	level := f.EffectiveLevel()
	if f.cfg.File == "" {
		return NewFormattedLogger(fallback, level, f.cfg.Format), nil
	}

	if err := os.MkdirAll(filepath.Dir(f.cfg.File), 0o755); err != nil {
		return nil, err
	}
	logger, file, err := NewFileLogger(f.cfg.File, level, f.cfg.Format)
	if err != nil {
		return nil, err
	}
	f.closers = append(f.closers, file)
	return logger, nil
}

// EffectiveLevel returns the level after applying the CLI override.
func (f *LoggerFactory) EffectiveLevel() slog.Level {
	if f.cliLevel != nil {
		return *f.cliLevel
	}
	if f.cfg.Level != "" {
		return LevelFromString(f.cfg.Level)
	}
	return slog.LevelInfo
}

// Close closes all open log files.
func (f *LoggerFactory) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}
