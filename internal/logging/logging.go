package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds a slog logger writing to stdout and sets it as the default.
// format is "text" (development) or "json" (production); text output
// includes source locations.
func New(format string, level slog.Level) *slog.Logger {
	logger := slog.New(NewHandler(os.Stdout, format, level))
	slog.SetDefault(logger)
	return logger
}

// NewHandler returns the slog handler for the given format.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
}
