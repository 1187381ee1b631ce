package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator применяет встроенные SQL-миграции через goose.
type Migrator struct {
	db  *Postgres
	log *slog.Logger
}

// NewMigrator создаёт Migrator поверх открытого пула.
func NewMigrator(db *Postgres, log *slog.Logger) *Migrator {
	return &Migrator{db: db, log: log}
}

// Up применяет все ещё не применённые миграции.
func (m *Migrator) Up(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		m.log.Info("applying migrations")
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		m.log.Info("migrations applied")
		return nil
	})
}

// Down откатывает последнюю миграцию либо все миграции новее target, если target > 0.
func (m *Migrator) Down(ctx context.Context, target int64) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if target > 0 {
			m.log.Info("rolling back migrations", slog.Int64("target", target))
			if err := goose.DownToContext(ctx, db, migrationsDir, target); err != nil {
				return fmt.Errorf("rollback to version %d: %w", target, err)
			}
			return nil
		}
		m.log.Info("rolling back latest migration")
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("rollback latest migration: %w", err)
		}
		return nil
	})
}

// Status выводит применённые и ожидающие миграции.
func (m *Migrator) Status(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

func (m *Migrator) withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}

	db := stdlib.OpenDBFromPool(m.db.Pool)
	defer db.Close()

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	return fn(runCtx, db)
}
