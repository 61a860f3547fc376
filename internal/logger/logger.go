// Package logger builds the structured logger used by the command line.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Config controls the level and destination of log records.
type Config struct {
	Debug bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds the command-line logger. Debug lowers the level and adds source locations.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339))
			}
			return a
		},
	})
	return slog.New(h)
}
