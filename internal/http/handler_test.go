package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-service/internal/auth"
	httpapi "crowdfund-service/internal/http"
	"crowdfund-service/internal/http/mocks"
	"crowdfund-service/internal/model"
	"crowdfund-service/internal/service"
)

const testSecret = "test-secret"

type handlerMocks struct {
	projects    *mocks.ProjectService
	teams       *mocks.TeamService
	completions *mocks.CompletionService
	profiles    *mocks.ProfileService
}

func newHandlerMocks() handlerMocks {
	return handlerMocks{
		projects:    new(mocks.ProjectService),
		teams:       new(mocks.TeamService),
		completions: new(mocks.CompletionService),
		profiles:    new(mocks.ProfileService),
	}
}

func (m handlerMocks) router() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	h := httpapi.NewHandler(m.projects, m.teams, m.completions, m.profiles, logger, httpapi.Options{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"*"},
	})
	return h.Router()
}

func (m handlerMocks) assert(t *testing.T) {
	m.projects.AssertExpectations(t)
	m.teams.AssertExpectations(t)
	m.completions.AssertExpectations(t)
	m.profiles.AssertExpectations(t)
}

func bearer(t *testing.T, userID int64, admin bool) string {
	t.Helper()
	token, err := auth.GenerateToken(auth.Principal{UserID: userID, Username: "user", IsAdmin: admin}, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		admin          bool
		anonymous      bool
		mockBehavior   func(m handlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Health is public",
			method:         http.MethodGet,
			path:           "/health",
			anonymous:      true,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unauthorized: no token",
			method:         http.MethodGet,
			path:           "/projects/",
			anonymous:      true,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "List is allowed for regular users",
			method: http.MethodGet,
			path:   "/projects/?search=river&ordering=-name",
			mockBehavior: func(m handlerMocks) {
				m.projects.On("List", mock.Anything, model.ProjectFilter{Search: "river", Ordering: "-name"}).
					Return([]model.Project{{ID: 1, Name: "River"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":1`,
		},
		{
			name:           "Forbidden: regular user cannot create",
			method:         http.MethodPost,
			path:           "/projects/",
			body:           `{"name":"X"}`,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Create sets proposer from token",
			method: http.MethodPost,
			path:   "/projects/",
			body:   `{"name":"River cleanup","description":"bags"}`,
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.projects.On("Create", mock.Anything, model.Project{Name: "River cleanup", Description: "bags"}, int64(1)).
					Return(model.Project{ID: 3, Name: "River cleanup", ProposedBy: 1, Phase: model.PhaseProposal}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"proposed_by":1`,
		},
		{
			name:           "Bad Request: invalid JSON",
			method:         http.MethodPatch,
			path:           "/projects/7/phase/",
			body:           `{"phase": `,
			admin:          true,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Bad Request: invalid phase has field errors",
			method: http.MethodPatch,
			path:   "/projects/7/phase/",
			body:   `{"phase":"archived"}`,
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.projects.On("AdvancePhase", mock.Anything, int64(7), model.ProjectPhase("archived")).
					Return(model.Project{}, service.ErrValidation(map[string][]string{"phase": {`"archived" is not a valid choice.`}}))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"fields":{"phase"`,
		},
		{
			name:   "Phase read",
			method: http.MethodGet,
			path:   "/projects/7/phase/",
			mockBehavior: func(m handlerMocks) {
				m.projects.On("GetPhase", mock.Anything, int64(7)).
					Return(model.Project{ID: 7, Name: "P", Phase: model.PhaseReview}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"phase":"review"`,
		},
		{
			name:           "Bad Request: non-numeric id",
			method:         http.MethodGet,
			path:           "/projects/abc/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Complete placeholder",
			method:         http.MethodGet,
			path:           "/projects/7/complete/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Finish the project with id: 7"}`,
		},
		{
			name:           "Issue placeholder",
			method:         http.MethodGet,
			path:           "/projects/7/issue/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Report an issue for the project with id: 7"}`,
		},
		{
			name:           "Bad Request: complete placeholder with non-numeric id",
			method:         http.MethodGet,
			path:           "/projects/abc/complete/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: issue placeholder with zero id",
			method:         http.MethodGet,
			path:           "/projects/0/issue/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: issue placeholder with negative id",
			method:         http.MethodGet,
			path:           "/projects/-3/issue/",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Complete pays out",
			method: http.MethodPost,
			path:   "/projects/7/complete/",
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.completions.On("CompleteProject", mock.Anything, int64(7)).Return(model.CompletionSummary{
					ProjectID: 7, TeamMembers: 2, PrizePerMember: 500, ManagerBonus: 540, Manager: "pm",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"manager_bonus":540`,
		},
		{
			name:   "Complete: project not found",
			method: http.MethodPost,
			path:   "/projects/404/complete/",
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.completions.On("CompleteProject", mock.Anything, int64(404)).
					Return(model.CompletionSummary{}, service.ErrNotFound("project not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Join uses requesting user",
			method: http.MethodPost,
			path:   "/projects/7/team/join/",
			body:   `{"role":"cook"}`,
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.teams.On("Join", mock.Anything, int64(7), int64(1), model.TeamMembership{Role: "cook"}).
					Return(model.TeamMembership{ID: 1, ProjectID: 7, MemberID: 1, Role: "cook"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"member":1`,
		},
		{
			name:   "Reject: not a member",
			method: http.MethodDelete,
			path:   "/projects/7/team/9/reject/",
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.teams.On("Reject", mock.Anything, int64(7), int64(9)).Return(service.ErrNotFound("team member not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Reject: success",
			method: http.MethodDelete,
			path:   "/projects/7/team/9/reject/",
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.teams.On("Reject", mock.Anything, int64(7), int64(9)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "Team member view",
			method: http.MethodGet,
			path:   "/projects/7/team/9/reject/",
			mockBehavior: func(m handlerMocks) {
				m.teams.On("GetMember", mock.Anything, int64(7), int64(9)).
					Return(model.TeamMembership{ID: 2, ProjectID: 7, MemberID: 9}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Requirements update",
			method: http.MethodPut,
			path:   "/projects/7/team-requirements/",
			body:   `{"team_size":3,"skills":["go"]}`,
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.projects.On("UpdateTeamRequirements", mock.Anything, int64(7), model.TeamRequirements{
					TeamSize: 3, Skills: []string{"go"},
				}).Return(model.TeamRequirements{ProjectID: 7, TeamSize: 3, Skills: []string{"go"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"team_size":3`,
		},
		{
			name:   "Delete project",
			method: http.MethodDelete,
			path:   "/projects/7/",
			admin:  true,
			mockBehavior: func(m handlerMocks) {
				m.projects.On("Delete", mock.Anything, int64(7)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "Profile wallet",
			method: http.MethodGet,
			path:   "/profile/",
			mockBehavior: func(m handlerMocks) {
				m.profiles.On("GetWallet", mock.Anything, int64(1)).
					Return(model.Profile{ID: 10, OwnerID: 1, Wallet: 540}, []model.WalletTransaction{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"my_wallet":540`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newHandlerMocks()
			tt.mockBehavior(m)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if !tt.anonymous {
				req.Header.Set("Authorization", bearer(t, 1, tt.admin))
			}
			w := httptest.NewRecorder()

			m.router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			m.assert(t)
		})
	}
}

func TestHandler_ErrorBody(t *testing.T) {
	m := newHandlerMocks()
	m.completions.On("CompleteProject", mock.Anything, int64(5)).
		Return(model.CompletionSummary{}, &service.AppError{
			Code:    "PAYOUT_FAILED",
			Message: "We couldn't finish project at this time. Try again later",
			Status:  http.StatusInternalServerError,
		})

	req := httptest.NewRequest(http.MethodPost, "/projects/5/complete/", nil)
	req.Header.Set("Authorization", bearer(t, 1, true))
	w := httptest.NewRecorder()

	m.router().ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "PAYOUT_FAILED", body.Error.Code)
	assert.Equal(t, "We couldn't finish project at this time. Try again later", body.Error.Message)
	m.assert(t)
}
