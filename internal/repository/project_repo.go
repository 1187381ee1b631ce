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

// ProjectRepo реализует репозиторий проектов и требований к команде на базе PostgreSQL.
type ProjectRepo struct {
	db *Postgres
}

// NewProjectRepo создаёт новый экземпляр ProjectRepo c переданным подключением к PostgreSQL.
func NewProjectRepo(db *Postgres) *ProjectRepo {
	return &ProjectRepo{db: db}
}

const projectColumns = `id, name, description, proposed_by, phase, created_at, updated_at`

// orderings сопоставляет параметр ordering с SQL, всё прочее игнорируется.
var orderings = map[string]string{
	"name":        "p.name ASC, p.id ASC",
	"-name":       "p.name DESC, p.id DESC",
	"created_at":  "p.created_at ASC, p.id ASC",
	"-created_at": "p.created_at DESC, p.id DESC",
}

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	var phase string
	var createdAt, updatedAt time.Time

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ProposedBy, &phase, &createdAt, &updatedAt); err != nil {
		return model.Project{}, err
	}
	p.Phase = model.ProjectPhase(phase)
	p.CreatedAt = &createdAt
	p.UpdatedAt = &updatedAt
	return p, nil
}

// Create сохраняет новый проект. Если автор не существует, вернёт ErrUserNotFound.
func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO projects (name, description, proposed_by, phase)
VALUES ($1, $2, $3, $4)
RETURNING `+projectColumns, p.Name, p.Description, p.ProposedBy, string(p.Phase))

	created, err := scanProject(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.Project{}, ErrUserNotFound
		}
		return model.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return created, nil
}

// GetByID возвращает проект по идентификатору или ErrProjectNotFound.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// LockByID читает проект с блокировкой строки до конца текущей транзакции.
// Вне транзакции блокировка снимается сразу, поэтому вызывать её нужно внутри RunInTransaction.
func (r *ProjectRepo) LockByID(ctx context.Context, id int64) (model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("lock project: %w", err)
	}
	return p, nil
}

// List возвращает проекты с учётом поиска по названию и имени автора.
// По умолчанию сортирует по названию.
func (r *ProjectRepo) List(ctx context.Context, f model.ProjectFilter) ([]model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	order, ok := orderings[f.Ordering]
	if !ok {
		order = orderings["name"]
	}

	rows, err := q.Query(ctx, `
SELECT p.id, p.name, p.description, p.proposed_by, p.phase, p.created_at, p.updated_at
FROM projects p
JOIN users u ON u.id = p.proposed_by
WHERE $1 = '' OR p.name ILIKE '%' || $1 || '%' OR u.username ILIKE '%' || $1 || '%'
ORDER BY `+order, f.Search)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	res := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Update перезаписывает название и описание проекта.
func (r *ProjectRepo) Update(ctx context.Context, p model.Project) (model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	updated, err := scanProject(q.QueryRow(ctx, `
UPDATE projects
SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING `+projectColumns, p.ID, p.Name, p.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

// UpdatePhase переводит проект на этап phase.
func (r *ProjectRepo) UpdatePhase(ctx context.Context, id int64, phase model.ProjectPhase) (model.Project, error) {
	q := r.db.GetQueryExecutor(ctx)

	updated, err := scanProject(q.QueryRow(ctx, `
UPDATE projects
SET phase = $2, updated_at = now()
WHERE id = $1
RETURNING `+projectColumns, id, string(phase)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("update phase: %w", err)
	}
	return updated, nil
}

// Delete удаляет проект вместе с командой и требованиями (ON DELETE CASCADE).
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// CreateRequirements сохраняет требования к команде проекта.
func (r *ProjectRepo) CreateRequirements(ctx context.Context, req model.TeamRequirements) (model.TeamRequirements, error) {
	q := r.db.GetQueryExecutor(ctx)

	created, err := scanRequirements(q.QueryRow(ctx, `
INSERT INTO team_requirements (project_id, team_size, skills, description)
VALUES ($1, $2, $3, $4)
RETURNING project_id, team_size, skills, description
`, req.ProjectID, req.TeamSize, skillsOrEmpty(req.Skills), req.Description))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.TeamRequirements{}, ErrProjectNotFound
		}
		return model.TeamRequirements{}, fmt.Errorf("insert requirements: %w", err)
	}
	return created, nil
}

// GetRequirements возвращает требования к команде или ErrRequirementsNotFound.
func (r *ProjectRepo) GetRequirements(ctx context.Context, projectID int64) (model.TeamRequirements, error) {
	q := r.db.GetQueryExecutor(ctx)

	req, err := scanRequirements(q.QueryRow(ctx, `
SELECT project_id, team_size, skills, description
FROM team_requirements
WHERE project_id = $1
`, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamRequirements{}, ErrRequirementsNotFound
		}
		return model.TeamRequirements{}, fmt.Errorf("get requirements: %w", err)
	}
	return req, nil
}

// UpdateRequirements перезаписывает требования к команде.
func (r *ProjectRepo) UpdateRequirements(ctx context.Context, req model.TeamRequirements) (model.TeamRequirements, error) {
	q := r.db.GetQueryExecutor(ctx)

	updated, err := scanRequirements(q.QueryRow(ctx, `
UPDATE team_requirements
SET team_size = $2, skills = $3, description = $4
WHERE project_id = $1
RETURNING project_id, team_size, skills, description
`, req.ProjectID, req.TeamSize, skillsOrEmpty(req.Skills), req.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamRequirements{}, ErrRequirementsNotFound
		}
		return model.TeamRequirements{}, fmt.Errorf("update requirements: %w", err)
	}
	return updated, nil
}

func scanRequirements(row pgx.Row) (model.TeamRequirements, error) {
	var req model.TeamRequirements
	if err := row.Scan(&req.ProjectID, &req.TeamSize, &req.Skills, &req.Description); err != nil {
		return model.TeamRequirements{}, err
	}
	if req.Skills == nil {
		req.Skills = make([]string, 0)
	}
	return req, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
