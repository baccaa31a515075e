// Package logging writes structured logs to a rotating file. The terminal
// host owns stdout, so nothing here ever prints to it.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the log sink.
type Options struct {
	Filename   string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultOptions mirrors the rotation policy used for workspace logs.
func DefaultOptions(filename, level string) Options {
	return Options{
		Filename:   filename,
		Level:      level,
		MaxSizeMB:  15,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Logger bundles the slog logger with the file it writes to.
type Logger struct {
	*slog.Logger
	closer io.Closer
	level  *slog.LevelVar
}

// New opens a rotating JSON logger. An empty filename discards output.
func New(opts Options) *Logger {
	level := &slog.LevelVar{}
	level.Set(ParseLevel(opts.Level))

	var w io.Writer = io.Discard
	var closer io.Closer
	if opts.Filename != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		w, closer = lj, lj
	}
	return NewWithWriter(w, closer, level)
}

// NewWithWriter builds a Logger over any writer.
func NewWithWriter(w io.Writer, closer io.Closer, level *slog.LevelVar) *Logger {
	if level == nil {
		level = &slog.LevelVar{}
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return &Logger{Logger: slog.New(handler), closer: closer, level: level}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard, nil, nil)
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(raw string) {
	l.level.Set(ParseLevel(raw))
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel maps a level name to slog. Unknown names mean info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
