// Package main запускает HTTP-сервис проектов и выплат
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crowdfund-service/internal/config"
	httpapi "crowdfund-service/internal/http"
	"crowdfund-service/internal/lock"
	applog "crowdfund-service/internal/logger"
	"crowdfund-service/internal/repository"
	"crowdfund-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	logger := applog.New("crowdfund-service", applog.ParseLevel(cfg.LogLevel))

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := repository.NewMigrator(db, logger).Up(ctx); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	// 1. Репозитории и менеджер транзакций
	projectRepo := repository.NewProjectRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	txManager := repository.NewTransactionManager(db)

	// 2. Блокировка завершения: Redis, если настроен
	var locker service.CompletionLocker = lock.NopLocker{}
	if cfg.RedisAddr != "" {
		redisLocker, err := lock.NewRedisLocker(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CompletionLockTTL, logger)
		if err != nil {
			log.Fatalf("failed to init redis: %v", err)
		}
		defer func() {
			if err := redisLocker.Close(); err != nil {
				logger.Error("redis close error", slog.Any("err", err))
			}
		}()
		locker = redisLocker
	} else {
		logger.Warn("REDIS_ADDR is not set, completions are serialized by the row lock only")
	}

	// 3. Сервисы
	projectService := service.NewProjectService(projectRepo, txManager, logger)
	teamService := service.NewTeamService(teamRepo, projectRepo, logger)
	completionService := service.NewCompletionService(projectRepo, teamRepo, profileRepo, txManager, locker, cfg.PrizePool, logger)
	profileService := service.NewProfileService(profileRepo)

	// 4. HTTP-обработчик
	handler := httpapi.NewHandler(projectService, teamService, completionService, profileService, logger, httpapi.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
