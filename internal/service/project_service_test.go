package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/repository"
	"crowdfund-service/internal/service"
	"crowdfund-service/internal/service/mocks"
)

func TestProjectService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      model.Project
		setupMocks func(repo *mocks.ProjectRepository, tm *mocks.TransactionManager)
		wantStatus int
	}{
		{
			name:  "Success: proposer and phase are set by the service",
			input: model.Project{Name: "Park cleanup", Phase: model.PhaseCompleted, ProposedBy: 99},
			setupMocks: func(repo *mocks.ProjectRepository, tm *mocks.TransactionManager) {
				passThroughTx(tm)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Project) bool {
					return p.ProposedBy == 5 && p.Phase == model.PhaseProposal
				})).Return(func(_ context.Context, p model.Project) model.Project {
					p.ID = 1
					return p
				}, nil)
				repo.On("CreateRequirements", mock.Anything, model.TeamRequirements{
					ProjectID: 1, TeamSize: 1, Skills: []string{},
				}).Return(model.TeamRequirements{ProjectID: 1, TeamSize: 1}, nil)
			},
		},
		{
			name:       "Fail: blank name",
			input:      model.Project{Name: "  "},
			setupMocks: func(repo *mocks.ProjectRepository, tm *mocks.TransactionManager) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Fail: name too long",
			input:      model.Project{Name: strings.Repeat("a", 256)},
			setupMocks: func(repo *mocks.ProjectRepository, tm *mocks.TransactionManager) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "Fail: proposer does not exist",
			input: model.Project{Name: "Ghost"},
			setupMocks: func(repo *mocks.ProjectRepository, tm *mocks.TransactionManager) {
				passThroughTx(tm)
				repo.On("Create", mock.Anything, mock.Anything).Return(model.Project{}, repository.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ProjectRepository)
			tm := new(mocks.TransactionManager)
			tt.setupMocks(repo, tm)

			svc := service.NewProjectService(repo, tm, discardLogger())
			got, err := svc.Create(context.Background(), tt.input, 5)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, int64(5), got.ProposedBy)
				assert.Equal(t, model.PhaseProposal, got.Phase)
			}
			repo.AssertExpectations(t)
			tm.AssertExpectations(t)
		})
	}
}

func TestProjectService_AdvancePhase(t *testing.T) {
	current := model.Project{ID: 1, Name: "P", Phase: model.PhasePlanning}

	tests := []struct {
		name       string
		next       model.ProjectPhase
		setupMocks func(repo *mocks.ProjectRepository)
		wantStatus int
		wantField  bool
	}{
		{
			name: "Success: move forward",
			next: model.PhaseExecution,
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("LockByID", mock.Anything, int64(1)).Return(current, nil)
				repo.On("UpdatePhase", mock.Anything, int64(1), model.PhaseExecution).
					Return(model.Project{ID: 1, Phase: model.PhaseExecution}, nil)
			},
		},
		{
			name: "Success: same phase is a no-op",
			next: model.PhasePlanning,
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("LockByID", mock.Anything, int64(1)).Return(current, nil)
			},
		},
		{
			name: "Fail: unknown phase does not touch the project",
			next: "archived",
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("LockByID", mock.Anything, int64(1)).Return(current, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantField:  true,
		},
		{
			name: "Fail: moving back is rejected",
			next: model.PhaseProposal,
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("LockByID", mock.Anything, int64(1)).Return(current, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantField:  true,
		},
		{
			name: "Fail: project not found",
			next: model.PhaseExecution,
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("LockByID", mock.Anything, int64(1)).Return(model.Project{}, repository.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ProjectRepository)
			tm := new(mocks.TransactionManager)
			passThroughTx(tm)
			tt.setupMocks(repo)

			svc := service.NewProjectService(repo, tm, discardLogger())
			got, err := svc.AdvancePhase(context.Background(), 1, tt.next)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				if tt.wantField {
					assert.Contains(t, appErr.Fields, "phase")
				}
				repo.AssertNotCalled(t, "UpdatePhase", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.next, got.Phase)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Patch(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	tm := new(mocks.TransactionManager)
	passThroughTx(tm)

	repo.On("LockByID", mock.Anything, int64(2)).
		Return(model.Project{ID: 2, Name: "Old", Description: "keep me"}, nil)
	repo.On("Update", mock.Anything, model.Project{ID: 2, Name: "New", Description: "keep me"}).
		Return(model.Project{ID: 2, Name: "New", Description: "keep me"}, nil)

	name := "New"
	svc := service.NewProjectService(repo, tm, discardLogger())
	got, err := svc.Patch(context.Background(), 2, model.ProjectPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "keep me", got.Description)
	repo.AssertExpectations(t)
}

func TestProjectService_UpdateTeamRequirements(t *testing.T) {
	tests := []struct {
		name       string
		input      model.TeamRequirements
		setupMocks func(repo *mocks.ProjectRepository)
		wantStatus int
		wantFields []string
	}{
		{
			name:  "Success",
			input: model.TeamRequirements{TeamSize: 3, Skills: []string{"go", "sql"}},
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("UpdateRequirements", mock.Anything, model.TeamRequirements{
					ProjectID: 4, TeamSize: 3, Skills: []string{"go", "sql"},
				}).Return(model.TeamRequirements{ProjectID: 4, TeamSize: 3, Skills: []string{"go", "sql"}}, nil)
			},
		},
		{
			name:       "Fail: invalid fields",
			input:      model.TeamRequirements{TeamSize: 0, Skills: []string{""}},
			setupMocks: func(repo *mocks.ProjectRepository) {},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"team_size", "skills[0]"},
		},
		{
			name:  "Fail: requirements missing",
			input: model.TeamRequirements{TeamSize: 1},
			setupMocks: func(repo *mocks.ProjectRepository) {
				repo.On("UpdateRequirements", mock.Anything, mock.Anything).
					Return(model.TeamRequirements{}, repository.ErrRequirementsNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.ProjectRepository)
			tt.setupMocks(repo)

			svc := service.NewProjectService(repo, new(mocks.TransactionManager), discardLogger())
			_, err := svc.UpdateTeamRequirements(context.Background(), 4, tt.input)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				for _, f := range tt.wantFields {
					assert.Contains(t, appErr.Fields, f)
				}
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	repo := new(mocks.ProjectRepository)
	repo.On("Delete", mock.Anything, int64(9)).Return(repository.ErrProjectNotFound)

	svc := service.NewProjectService(repo, new(mocks.TransactionManager), discardLogger())
	err := svc.Delete(context.Background(), 9)

	assert.True(t, service.IsNotFound(err))
	repo.AssertExpectations(t)
}
