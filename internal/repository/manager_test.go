package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx подменяет pgx.Tx в контексте; методы не вызываются.
type fakeTx struct {
	pgx.Tx
}

func TestRunInTransaction_ReusesTxFromContext(t *testing.T) {
	tx := &fakeTx{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))

	// db не задан: ветка с уже открытой транзакцией не должна обращаться к пулу.
	db := &Postgres{}
	tm := NewTransactionManager(db)

	called := false
	err := tm.RunInTransaction(ctx, func(inner context.Context) error {
		called = true
		assert.Same(t, tx, db.GetQueryExecutor(inner))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	errInner := errors.New("inner failed")
	err = tm.RunInTransaction(ctx, func(context.Context) error { return errInner })
	assert.ErrorIs(t, err, errInner)
}

// Вложенный вызов работает в транзакции внешнего, поэтому ошибка внешнего
// откатывает и запись, сделанную внутри. Нужна реальная база: DB_DSN.
func TestRunInTransaction_NestedRollback(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN is required for repository tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := NewPostgres(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, NewMigrator(db, slog.New(slog.NewTextHandler(io.Discard, nil))).Up(ctx))

	tm := NewTransactionManager(db)
	username := fmt.Sprintf("nested_tx_%d", time.Now().UnixNano())
	errOuter := errors.New("outer failed")

	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
			_, err := db.GetQueryExecutor(ctx).Exec(ctx, `INSERT INTO users (username) VALUES ($1)`, username)
			return err
		}); err != nil {
			return err
		}
		return errOuter
	})
	require.ErrorIs(t, err, errOuter)

	var exists bool
	require.NoError(t, db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists))
	assert.False(t, exists)
}
