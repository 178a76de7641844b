// Package logger configures the structured session log. Records are written
// as JSON lines to contacts.log under the data directory so that the
// interactive terminal stays clean.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log file created inside the log directory.
const FileName = "contacts.log"

// Config selects where and how verbosely to log.
type Config struct {
	Dir   string
	Debug bool
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Setup opens the log file and returns a logger writing to it together with
// a cleanup function that closes the file. On error the returned logger
// discards output and cleanup is a no-op, so callers can carry on.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	dir := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), noop, err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), noop, err
	}

	l := New(f, cfg.Debug)
	l.Debug("logger.initialized", "path", path)
	return l, f.Close, nil
}

// New returns a JSON logger writing to w. Debug enables debug level and
// source locations.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}
