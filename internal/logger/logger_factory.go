package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"evm_contract_client/internal/config"
)

// NewAppLogger creates an AppLogger with the configured level and output format.
// Records go to out, or to stderr when out is nil. The process-wide slog
// default is left untouched since sessions are used as a library.
func NewAppLogger(cfg config.LoggerConfig, out io.Writer) (AppLogger, error) {
	level, err := toSlogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	if out == nil {
		out = os.Stderr
	}

	handler, err := toSlogHandler(cfg.Format, out, &slog.HandlerOptions{Level: level, ReplaceAttr: redactSecrets})
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	return NewSlogAdapter(slog.New(handler).With("component", "contract_session")), nil
}

// sensitiveKeys are attribute keys whose values never reach the output.
var sensitiveKeys = map[string]struct{}{
	"secret":       {},
	"walletSecret": {},
	"privateKey":   {},
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[a.Key]; ok {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

// toSlogLevel converts a config.LogLevel to a slog.Level.
func toSlogLevel(level config.LogLevel) (slog.Level, error) {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug, nil
	case config.LogLevelInfo:
		return slog.LevelInfo, nil
	case config.LogLevelWarn:
		return slog.LevelWarn, nil
	case config.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

// toSlogHandler creates a slog.Handler based on the config.LogFormat.
func toSlogHandler(format config.LogFormat, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(out, opts), nil
	case config.LogFormatText:
		return slog.NewTextHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
