// Package config читает настройки сервиса из переменных окружения.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultPrizePool делится между участниками команды, если PRIZE_POOL не задан.
const DefaultPrizePool = 1000

// Config содержит параметры запуска сервиса.
type Config struct {
	HTTPAddr           string
	DatabaseDSN        string
	JWTSecret          string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	PrizePool          int64
	CompletionLockTTL  time.Duration
	CORSAllowedOrigins []string
	MigrateOnStart     bool
	LogLevel           string
}

// Load собирает Config из окружения. DB_DSN обязателен.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:           GetString("HTTP_ADDR", ":8080"),
		DatabaseDSN:        GetString("DB_DSN", ""),
		JWTSecret:          GetString("JWT_SECRET", ""),
		RedisAddr:          GetString("REDIS_ADDR", ""),
		RedisPassword:      GetString("REDIS_PASSWORD", ""),
		RedisDB:            GetInt("REDIS_DB", 0),
		PrizePool:          int64(GetInt("PRIZE_POOL", DefaultPrizePool)),
		CompletionLockTTL:  GetDuration("COMPLETION_LOCK_TTL", 30*time.Second),
		CORSAllowedOrigins: GetList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MigrateOnStart:     GetBool("MIGRATE_ON_START", true),
		LogLevel:           GetString("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("DB_DSN environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET environment variable is required")
	}
	if cfg.PrizePool < 0 {
		return Config{}, errors.New("PRIZE_POOL must not be negative")
	}
	return cfg, nil
}

// GetString возвращает значение переменной или fallback, если она не задана.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetInt возвращает переменную как целое число или fallback.
func GetInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			slog.Warn("invalid integer in env", slog.String("key", key), slog.Any("err", err))
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetBool возвращает переменную как bool или fallback.
func GetBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			slog.Warn("invalid bool in env", slog.String("key", key), slog.Any("err", err))
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetDuration разбирает значения вида "30s", "1m".
func GetDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			slog.Warn("invalid duration in env", slog.String("key", key), slog.Any("err", err))
			return fallback
		}
		return parsed
	}
	return fallback
}

// GetList разбирает список через запятую, пустые элементы отбрасываются.
func GetList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	res := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	if len(res) == 0 {
		return fallback
	}
	return res
}
