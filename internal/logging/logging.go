package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a leveled JSON logger writing to stderr. Stdout is
// reserved for result output (and MCP protocol frames under serve).
func New(level string) *slog.Logger {
	return NewWithWriter(level, os.Stderr)
}

func NewWithWriter(level string, writer io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(writer, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
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
