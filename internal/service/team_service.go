package service

import (
	"context"
	"errors"
	"log/slog"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/repository"
)

// TeamService управляет составом команд проектов: вступление, просмотр и исключение участников.
type TeamService struct {
	team     TeamRepository
	projects ProjectRepository
	log      *slog.Logger
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(team TeamRepository, projects ProjectRepository, log *slog.Logger) *TeamService {
	return &TeamService{team: team, projects: projects, log: log}
}

// Join добавляет пользователя memberID в команду проекта.
func (s *TeamService) Join(ctx context.Context, projectID, memberID int64, input model.TeamMembership) (model.TeamMembership, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return model.TeamMembership{}, mapTeamErr(err, "failed to get project")
	}
	if err := ValidateMembership(input.Role, input.Motivation); err != nil {
		return model.TeamMembership{}, err
	}

	input.ProjectID = projectID
	input.MemberID = memberID

	m, err := s.team.AddMember(ctx, input)
	if err != nil {
		return model.TeamMembership{}, mapTeamErr(err, "failed to join team")
	}

	s.log.Info("team member joined",
		slog.Int64("project_id", projectID),
		slog.Int64("member_id", memberID),
	)
	return m, nil
}

// GetMember возвращает участие memberID в команде проекта.
func (s *TeamService) GetMember(ctx context.Context, projectID, memberID int64) (model.TeamMembership, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return model.TeamMembership{}, mapTeamErr(err, "failed to get project")
	}
	m, err := s.team.GetMember(ctx, projectID, memberID)
	if err != nil {
		return model.TeamMembership{}, mapTeamErr(err, "failed to get team member")
	}
	return m, nil
}

// Reject исключает memberID из команды. Для пользователя не из команды вернёт NOT_FOUND.
func (s *TeamService) Reject(ctx context.Context, projectID, memberID int64) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return mapTeamErr(err, "failed to get project")
	}
	if err := s.team.RemoveMember(ctx, projectID, memberID); err != nil {
		return mapTeamErr(err, "failed to reject team member")
	}

	s.log.Info("team member rejected",
		slog.Int64("project_id", projectID),
		slog.Int64("member_id", memberID),
	)
	return nil
}

// ListMembers возвращает всех участников команды проекта.
func (s *TeamService) ListMembers(ctx context.Context, projectID int64) ([]model.TeamMembership, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapTeamErr(err, "failed to get project")
	}
	members, err := s.team.ListMembers(ctx, projectID)
	if err != nil {
		return nil, mapTeamErr(err, "failed to list team members")
	}
	return members, nil
}

func mapTeamErr(err error, internalMsg string) error {
	switch {
	case errors.Is(err, repository.ErrProjectNotFound):
		return ErrNotFound("project not found")
	case errors.Is(err, repository.ErrMemberNotFound):
		return ErrNotFound("team member not found")
	case errors.Is(err, repository.ErrUserNotFound):
		return ErrNotFound("user not found")
	case errors.Is(err, repository.ErrMemberExists):
		return ErrDomain("ALREADY_MEMBER", "user is already a member of this project team")
	default:
		return ErrInternal(internalMsg, err)
	}
}
