// Package logger builds the structured logger used by the fraction console.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config selects the log file and level used by [Setup].
type Config struct {
	Path  string
	Debug bool
}

// New returns a JSON logger writing to w.
// Debug lowers the level to Debug and adds source locations.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup opens cfg.Path for appending and returns a logger writing to it,
// along with a cleanup function closing the file.
// With an empty path the logger discards everything.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Path == "" {
		return Discard(), func() error { return nil }, nil
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Discard(), nil, err
		}
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), nil, err
	}

	l := New(f, cfg.Debug)
	l.Info("logger.initialized", "path", cfg.Path, "debug", cfg.Debug)

	return l, f.Close, nil
}
