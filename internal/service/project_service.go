package service

import (
	"context"
	"errors"
	"log/slog"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/repository"
)

// ProjectService содержит бизнес-логику создания проектов, смены этапов и требований к команде.
type ProjectService struct {
	repo      ProjectRepository
	txManager TransactionManager
	log       *slog.Logger
}

// NewProjectService создаёт новый сервис проектов.
func NewProjectService(repo ProjectRepository, txManager TransactionManager, log *slog.Logger) *ProjectService {
	return &ProjectService{repo: repo, txManager: txManager, log: log}
}

// List возвращает проекты с фильтром и сортировкой.
func (s *ProjectService) List(ctx context.Context, f model.ProjectFilter) ([]model.Project, error) {
	projects, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, ErrInternal("failed to list projects", err)
	}
	return projects, nil
}

// Get возвращает проект по идентификатору.
func (s *ProjectService) Get(ctx context.Context, id int64) (model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, mapProjectErr(err, "failed to get project")
	}
	return p, nil
}

// Create создаёт проект от имени proposer на этапе proposal
// и в той же транзакции заводит требования к команде по умолчанию.
func (s *ProjectService) Create(ctx context.Context, input model.Project, proposer int64) (model.Project, error) {
	if err := ValidateProject(input.Name, input.Description); err != nil {
		return model.Project{}, err
	}

	input.ProposedBy = proposer
	input.Phase = model.PhaseProposal

	var created model.Project
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		created, errTx = s.repo.Create(ctx, input)
		if errTx != nil {
			return errTx
		}
		_, errTx = s.repo.CreateRequirements(ctx, model.TeamRequirements{
			ProjectID: created.ID,
			TeamSize:  1,
			Skills:    []string{},
		})
		return errTx
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Project{}, ErrNotFound("proposer not found")
		}
		return model.Project{}, ErrInternal("failed to create project", err)
	}

	s.log.Info("project created",
		slog.Int64("project_id", created.ID),
		slog.Int64("proposed_by", proposer),
	)
	return created, nil
}

// Update полностью перезаписывает редактируемые поля проекта.
func (s *ProjectService) Update(ctx context.Context, id int64, input model.Project) (model.Project, error) {
	if err := ValidateProject(input.Name, input.Description); err != nil {
		return model.Project{}, err
	}
	input.ID = id
	p, err := s.repo.Update(ctx, input)
	if err != nil {
		return model.Project{}, mapProjectErr(err, "failed to update project")
	}
	return p, nil
}

// Patch обновляет только переданные поля.
func (s *ProjectService) Patch(ctx context.Context, id int64, patch model.ProjectPatch) (model.Project, error) {
	if err := ValidateProjectPatch(patch); err != nil {
		return model.Project{}, err
	}

	var updated model.Project
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, errTx := s.repo.LockByID(ctx, id)
		if errTx != nil {
			return errTx
		}
		if patch.Name != nil {
			current.Name = *patch.Name
		}
		if patch.Description != nil {
			current.Description = *patch.Description
		}
		updated, errTx = s.repo.Update(ctx, current)
		return errTx
	})
	if err != nil {
		return model.Project{}, mapProjectErr(err, "failed to update project")
	}
	return updated, nil
}

// Delete удаляет проект.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapProjectErr(err, "failed to delete project")
	}
	s.log.Info("project deleted", slog.Int64("project_id", id))
	return nil
}

// GetPhase возвращает проект, из которого клиенту нужен текущий этап.
func (s *ProjectService) GetPhase(ctx context.Context, id int64) (model.Project, error) {
	return s.Get(ctx, id)
}

// AdvancePhase переводит проект на этап next. Некорректный этап или откат назад
// возвращают ошибку валидации, проект при этом не меняется.
func (s *ProjectService) AdvancePhase(ctx context.Context, id int64, next model.ProjectPhase) (model.Project, error) {
	var updated model.Project
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, errTx := s.repo.LockByID(ctx, id)
		if errTx != nil {
			return errTx
		}
		if errTx = ValidatePhaseTransition(current.Phase, next); errTx != nil {
			return errTx
		}
		if current.Phase == next {
			updated = current
			return nil
		}
		updated, errTx = s.repo.UpdatePhase(ctx, id, next)
		return errTx
	})
	if err != nil {
		return model.Project{}, mapProjectErr(err, "failed to advance project phase")
	}

	s.log.Info("project phase changed",
		slog.Int64("project_id", id),
		slog.String("phase", string(updated.Phase)),
	)
	return updated, nil
}

// GetTeamRequirements возвращает требования к команде проекта.
func (s *ProjectService) GetTeamRequirements(ctx context.Context, projectID int64) (model.TeamRequirements, error) {
	req, err := s.repo.GetRequirements(ctx, projectID)
	if err != nil {
		return model.TeamRequirements{}, mapProjectErr(err, "failed to get team requirements")
	}
	return req, nil
}

// UpdateTeamRequirements перезаписывает требования к команде проекта.
func (s *ProjectService) UpdateTeamRequirements(ctx context.Context, projectID int64, input model.TeamRequirements) (model.TeamRequirements, error) {
	input.ProjectID = projectID
	if input.Skills == nil {
		input.Skills = []string{}
	}
	if err := ValidateRequirements(input); err != nil {
		return model.TeamRequirements{}, err
	}
	req, err := s.repo.UpdateRequirements(ctx, input)
	if err != nil {
		return model.TeamRequirements{}, mapProjectErr(err, "failed to update team requirements")
	}
	return req, nil
}

// mapProjectErr переводит ошибки репозитория в AppError.
// Уже готовые AppError (например, ошибки валидации из транзакции) пропускаются как есть.
func mapProjectErr(err error, internalMsg string) error {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrProjectNotFound):
		return ErrNotFound("project not found")
	case errors.Is(err, repository.ErrRequirementsNotFound):
		return ErrNotFound("team requirements not found")
	default:
		return ErrInternal(internalMsg, err)
	}
}
