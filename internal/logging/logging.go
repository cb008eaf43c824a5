// Package logging builds the structured loggers of the solver commands.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownLevel is returned for level names other than debug, info, warn
// and error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned for formats other than text and json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level and output format.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Service is added to every record when set.
	Service string `yaml:"-"`
}

// ParseLevel converts a level name into a slog.Level. The empty name is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
}

// New returns a logger writing to w.
func New(w io.Writer, config Config) (*slog.Logger, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, config.Format)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", config.Service)})
	}
	return slog.New(handler), nil
}
