package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowdfund-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo реализует хранение участников команд проектов.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// AddMember добавляет пользователя в команду проекта.
// Повторное вступление даёт ErrMemberExists, ссылка на несуществующий проект даёт ErrProjectNotFound.
func (r *TeamRepo) AddMember(ctx context.Context, m model.TeamMembership) (model.TeamMembership, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
WITH inserted AS (
    INSERT INTO team_memberships (project_id, member_id, role, motivation)
    VALUES ($1, $2, $3, $4)
    RETURNING id, project_id, member_id, role, motivation, created_at
)
SELECT i.id, i.project_id, i.member_id, u.username, i.role, i.motivation, i.created_at
FROM inserted i
JOIN users u ON u.id = i.member_id
`, m.ProjectID, m.MemberID, m.Role, m.Motivation)

	created, err := scanMembership(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgUniqueViolation:
				return model.TeamMembership{}, ErrMemberExists
			case pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == "team_memberships_member_id_fkey":
				return model.TeamMembership{}, ErrUserNotFound
			case pgErr.Code == pgForeignKeyViolation:
				return model.TeamMembership{}, ErrProjectNotFound
			}
		}
		return model.TeamMembership{}, fmt.Errorf("insert membership: %w", err)
	}
	return created, nil
}

// GetMember возвращает участие пользователя в команде или ErrMemberNotFound.
func (r *TeamRepo) GetMember(ctx context.Context, projectID, memberID int64) (model.TeamMembership, error) {
	q := r.db.GetQueryExecutor(ctx)

	m, err := scanMembership(q.QueryRow(ctx, `
SELECT tm.id, tm.project_id, tm.member_id, u.username, tm.role, tm.motivation, tm.created_at
FROM team_memberships tm
JOIN users u ON u.id = tm.member_id
WHERE tm.project_id = $1 AND tm.member_id = $2
`, projectID, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamMembership{}, ErrMemberNotFound
		}
		return model.TeamMembership{}, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

// RemoveMember исключает пользователя из команды.
func (r *TeamRepo) RemoveMember(ctx context.Context, projectID, memberID int64) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `
DELETE FROM team_memberships
WHERE project_id = $1 AND member_id = $2
`, projectID, memberID)
	if err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// ListMembers возвращает участников команды проекта в порядке вступления.
func (r *TeamRepo) ListMembers(ctx context.Context, projectID int64) ([]model.TeamMembership, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT tm.id, tm.project_id, tm.member_id, u.username, tm.role, tm.motivation, tm.created_at
FROM team_memberships tm
JOIN users u ON u.id = tm.member_id
WHERE tm.project_id = $1
ORDER BY tm.created_at, tm.id
`, projectID)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	defer rows.Close()

	res := make([]model.TeamMembership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

func scanMembership(row pgx.Row) (model.TeamMembership, error) {
	var m model.TeamMembership
	var createdAt time.Time
	if err := row.Scan(&m.ID, &m.ProjectID, &m.MemberID, &m.Username, &m.Role, &m.Motivation, &createdAt); err != nil {
		return model.TeamMembership{}, err
	}
	m.CreatedAt = &createdAt
	return m, nil
}
