// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/monglot/internal/config"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger builds a logger writing to w. debug forces the debug level and adds source locations.
func NewLogger(w io.Writer, cfg config.LogConfig, debug bool) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}
	switch cfg.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", cfg.Format)
	}
}

// Setup installs the logger from NewLogger as the slog default.
func Setup(w io.Writer, cfg config.LogConfig, debug bool) error {
	logger, err := NewLogger(w, cfg, debug)
	if err != nil {
		return fmt.Errorf("NewLogger() > %w", err)
	}
	slog.SetDefault(logger)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	if level == "" {
		return slog.LevelInfo, nil
	}
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	return parsed, nil
}
