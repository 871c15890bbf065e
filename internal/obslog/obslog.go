// Package obslog wires the codec's structured logging: a slog.Logger with
// a configurable level, optionally backed by a rotating file sink so a
// long batch-encode run doesn't grow one log file without bound.
package obslog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level   slog.Level
	JSON    bool
	LogPath string // empty writes to stderr instead of a rotating file
}

// New builds a slog.Logger per Options, using lumberjack for rotation when
// LogPath is set.
func New(opts Options) *slog.Logger {
	var w io.Writer = os.Stderr
	if opts.LogPath != "" {
		w = &lumberjack.Logger{
			Filename:   opts.LogPath,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(h)
}

// ParseLevel maps the --log-level flag's textual values onto slog.Level,
// defaulting to Info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
