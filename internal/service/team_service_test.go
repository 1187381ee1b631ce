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

func TestTeamService_Join(t *testing.T) {
	project := model.Project{ID: 1, Name: "P"}

	tests := []struct {
		name       string
		input      model.TeamMembership
		setupMocks func(team *mocks.TeamRepository, projects *mocks.ProjectRepository)
		wantStatus int
	}{
		{
			name:  "Success: member is the requesting user",
			input: model.TeamMembership{Role: "designer", MemberID: 777},
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(project, nil)
				team.On("AddMember", mock.Anything, model.TeamMembership{ProjectID: 1, MemberID: 5, Role: "designer"}).
					Return(model.TeamMembership{ID: 11, ProjectID: 1, MemberID: 5, Role: "designer"}, nil).Once()
			},
		},
		{
			name: "Fail: project not found",
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(model.Project{}, repository.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "Fail: missing project wins over invalid body",
			input: model.TeamMembership{Role: strings.Repeat("r", 65)},
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(model.Project{}, repository.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:  "Fail: role too long",
			input: model.TeamMembership{Role: strings.Repeat("r", 65)},
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(project, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Fail: already a member",
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(project, nil)
				team.On("AddMember", mock.Anything, mock.Anything).Return(model.TeamMembership{}, repository.ErrMemberExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := new(mocks.TeamRepository)
			projects := new(mocks.ProjectRepository)
			tt.setupMocks(team, projects)

			svc := service.NewTeamService(team, projects, discardLogger())
			got, err := svc.Join(context.Background(), 1, 5, tt.input)

			if tt.wantStatus != 0 {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), got.MemberID)
				assert.Equal(t, int64(1), got.ProjectID)
			}
			team.AssertExpectations(t)
			projects.AssertExpectations(t)
		})
	}
}

func TestTeamService_Reject(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(team *mocks.TeamRepository, projects *mocks.ProjectRepository)
		wantErr    bool
	}{
		{
			name: "Success",
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(model.Project{ID: 1}, nil)
				team.On("RemoveMember", mock.Anything, int64(1), int64(2)).Return(nil)
			},
		},
		{
			name: "Fail: not a member",
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(model.Project{ID: 1}, nil)
				team.On("RemoveMember", mock.Anything, int64(1), int64(2)).Return(repository.ErrMemberNotFound)
			},
			wantErr: true,
		},
		{
			name: "Fail: project missing",
			setupMocks: func(team *mocks.TeamRepository, projects *mocks.ProjectRepository) {
				projects.On("GetByID", mock.Anything, int64(1)).Return(model.Project{}, repository.ErrProjectNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := new(mocks.TeamRepository)
			projects := new(mocks.ProjectRepository)
			tt.setupMocks(team, projects)

			svc := service.NewTeamService(team, projects, discardLogger())
			err := svc.Reject(context.Background(), 1, 2)

			if tt.wantErr {
				assert.True(t, service.IsNotFound(err))
			} else {
				assert.NoError(t, err)
			}
			team.AssertExpectations(t)
			projects.AssertExpectations(t)
		})
	}
}
