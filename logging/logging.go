// Package logging builds the application logger and an [mdview.Observer]
// that writes timing events to it.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fwojciec/mdview"
)

// New creates a configured application logger.
// It writes to Stderr so rendered output on Stdout stays clean.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// Unknown names map to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(name)))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Interface compliance check.
var _ mdview.Observer = (*Observer)(nil)

// Observer logs each timing event at info level.
type Observer struct {
	logger *slog.Logger
}

// NewObserver creates an Observer writing to logger.
func NewObserver(logger *slog.Logger) *Observer {
	return &Observer{logger: logger}
}

// Timing logs the event.
func (o *Observer) Timing(name string, millis int64) {
	o.logger.Info("timing_complete", "name", name, "value", millis)
}
