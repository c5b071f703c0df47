package logger

import (
	"context"
	"io"
	"log/slog"
)

// slogAdapter implements AppLogger on top of a *slog.Logger.
type slogAdapter struct {
	adaptee *slog.Logger
}

// NewSlogAdapter wraps slogLogger, falling back to slog.Default when it is nil.
func NewSlogAdapter(slogLogger *slog.Logger) AppLogger {
	if slogLogger == nil {
		slogLogger = slog.Default()
	}
	return &slogAdapter{adaptee: slogLogger}
}

// NewDiscardLogger returns an AppLogger that drops every record.
func NewDiscardLogger() AppLogger {
	return NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.log(slog.LevelDebug, msg, args) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.log(slog.LevelInfo, msg, args) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.log(slog.LevelWarn, msg, args) }
func (s *slogAdapter) Error(msg string, args ...any) { s.log(slog.LevelError, msg, args) }

func (s *slogAdapter) With(args ...any) AppLogger {
	return &slogAdapter{adaptee: s.adaptee.With(args...)}
}

func (s *slogAdapter) log(level slog.Level, msg string, args []any) {
	s.adaptee.Log(context.Background(), level, msg, args...)
}
