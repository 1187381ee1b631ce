package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowdfund-service/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProfileRepo реализует доступ к профилям и журналу начислений.
type ProfileRepo struct {
	db *Postgres
}

// NewProfileRepo создаёт новый экземпляр ProfileRepo.
func NewProfileRepo(db *Postgres) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetByOwner возвращает профиль пользователя. Если профилей несколько, берётся первый по id.
func (r *ProfileRepo) GetByOwner(ctx context.Context, ownerID int64) (model.Profile, error) {
	q := r.db.GetQueryExecutor(ctx)

	var p model.Profile
	err := q.QueryRow(ctx, `
SELECT p.id, p.owner_id, u.username, p.wallet
FROM profiles p
JOIN users u ON u.id = p.owner_id
WHERE p.owner_id = $1
ORDER BY p.id
LIMIT 1
`, ownerID).Scan(&p.ID, &p.OwnerID, &p.Username, &p.Wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// CreditOwner увеличивает баланс всех профилей пользователя на amount
// и возвращает обновлённые профили. Пустой результат не считается ошибкой.
func (r *ProfileRepo) CreditOwner(ctx context.Context, ownerID, amount int64) ([]model.Profile, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
UPDATE profiles p
SET wallet = p.wallet + $2
FROM users u
WHERE p.owner_id = $1 AND u.id = p.owner_id
RETURNING p.id, p.owner_id, u.username, p.wallet
`, ownerID, amount)
	if err != nil {
		return nil, fmt.Errorf("credit profiles: %w", err)
	}
	defer rows.Close()

	res := make([]model.Profile, 0, 1)
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Username, &p.Wallet); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// CreditProfile увеличивает баланс конкретного профиля.
func (r *ProfileRepo) CreditProfile(ctx context.Context, profileID, amount int64) (model.Profile, error) {
	q := r.db.GetQueryExecutor(ctx)

	var p model.Profile
	err := q.QueryRow(ctx, `
UPDATE profiles p
SET wallet = p.wallet + $2
FROM users u
WHERE p.id = $1 AND u.id = p.owner_id
RETURNING p.id, p.owner_id, u.username, p.wallet
`, profileID, amount).Scan(&p.ID, &p.OwnerID, &p.Username, &p.Wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("credit profile: %w", err)
	}
	return p, nil
}

// RecordTransactions пишет записи журнала начислений одним батчем.
func (r *ProfileRepo) RecordTransactions(ctx context.Context, txs []model.WalletTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	q := r.db.GetQueryExecutor(ctx)

	batch := &pgx.Batch{}
	for _, t := range txs {
		batch.Queue(`
INSERT INTO wallet_transactions (id, profile_id, project_id, amount, kind)
VALUES ($1, $2, $3, $4, $5)
`, t.ID, t.ProfileID, t.ProjectID, t.Amount, string(t.Kind))
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert wallet transactions: %w", err)
	}
	return nil
}

// ListTransactions возвращает последние limit записей журнала профиля.
func (r *ProfileRepo) ListTransactions(ctx context.Context, profileID int64, limit int) ([]model.WalletTransaction, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT id, profile_id, project_id, amount, kind, created_at
FROM wallet_transactions
WHERE profile_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("query wallet transactions: %w", err)
	}
	defer rows.Close()

	res := make([]model.WalletTransaction, 0)
	for rows.Next() {
		var t model.WalletTransaction
		var kind string
		var projectID *int64
		var createdAt time.Time
		if err := rows.Scan(&t.ID, &t.ProfileID, &projectID, &t.Amount, &kind, &createdAt); err != nil {
			return nil, fmt.Errorf("scan wallet transaction: %w", err)
		}
		// project_id обнуляется при удалении проекта, запись журнала остаётся.
		if projectID != nil {
			t.ProjectID = *projectID
		}
		t.Kind = model.TransactionKind(kind)
		t.CreatedAt = &createdAt
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}
