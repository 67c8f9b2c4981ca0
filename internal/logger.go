package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger builds the storefront's process logger. Dev environments get
// human-readable text output; prod emits JSON with RFC3339 timestamps for
// the log pipeline. Every line carries the service attribute so storefront
// logs stay distinguishable once aggregated.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "info", "":
	default:
		slog.Default().Warn("Invalid log level. Using default level: info", slog.String("value", level))
	}

	var h slog.Handler
	if env == "prod" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}

	return slog.New(h).With(slog.String("service", "storefront"))
}
