// Package log sets up slog for a program that owns the terminal: records go
// to a rotating file, never to stderr.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level string // debug, info, warn, error
	File  string // empty disables logging
}

// New builds a JSON logger writing to a rotating file. The returned closer
// flushes the file; it is a no-op when logging is disabled.
func New(opts Options) (*slog.Logger, io.Closer) {
	if strings.TrimSpace(opts.File) == "" {
		return Discard(), nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return Discard(), nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(h).With(slog.String("app", "folio")), w
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
