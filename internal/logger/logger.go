package logger

import (
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envProd = "prod"
	envTest = "test"
)

type Logger struct {
	*slog.Logger
}

// New builds a logger for the given environment: human-readable debug
// output in dev, JSON at info level in prod, discarded output in test.
func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case envTest:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	case envDev:
		fallthrough
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return &Logger{slog.New(handler)}
}
