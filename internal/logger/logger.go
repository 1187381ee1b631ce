// Package logger собирает JSON slog.Logger для бинарей сервиса.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New возвращает JSON-логгер с атрибутом service.
func New(service string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("service", service))
}

// ParseLevel переводит LOG_LEVEL в slog.Level. Неизвестные значения дают info.
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
