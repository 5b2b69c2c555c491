// Package logging builds the structured logger used by lifelog. Records are
// JSON lines written to a rotating file, with journal text masked.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Options selects the log destination and level.
type Options struct {
	Level string
	RotationConfig
}

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing to the rotating file in opts. The returned
// io.Closer releases the file. An empty File yields a discarding logger.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	if opts.File == "" {
		return Discard(), nopCloser{}, nil
	}

	w, err := NewRotatingWriter(opts.RotationConfig)
	if err != nil {
		return nil, nil, err
	}

	return NewWithWriter(w, level), w, nil
}

// NewWithWriter returns a redacting JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	inner := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewRedactingHandler(inner))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
