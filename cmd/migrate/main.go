// Package main применяет или откатывает миграции базы данных
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"crowdfund-service/internal/config"
	applog "crowdfund-service/internal/logger"
	"crowdfund-service/internal/repository"
)

func main() {
	command := flag.String("command", "up", "migration command: up|down|status")
	target := flag.Int64("target", 0, "version to roll back to (down only, 0 = latest migration)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := applog.New("crowdfund-migrate", applog.ParseLevel(config.GetString("LOG_LEVEL", "info")))

	dsn := config.GetString("DB_DSN", "")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := repository.NewPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	m := repository.NewMigrator(db, logger)

	switch *command {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx, *target)
	case "status":
		err = m.Status(ctx)
	default:
		logger.Error("unknown command", slog.String("command", *command))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", slog.String("command", *command), slog.Any("err", err))
		os.Exit(1)
	}
}
