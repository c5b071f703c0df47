// Package logger defines the structured logging contract used by contract sessions.
package logger

// AppLogger is the logging contract of the session and its adapters.
// Arguments are alternating key/value pairs, as in log/slog.
type AppLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) AppLogger
}
