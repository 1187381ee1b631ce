package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund-service/internal/model"
	"crowdfund-service/internal/service"
)

// ProjectService описывает операции над проектами, нужные HTTP-слою.
type ProjectService interface {
	List(ctx context.Context, f model.ProjectFilter) ([]model.Project, error)
	Get(ctx context.Context, id int64) (model.Project, error)
	Create(ctx context.Context, input model.Project, proposer int64) (model.Project, error)
	Update(ctx context.Context, id int64, input model.Project) (model.Project, error)
	Patch(ctx context.Context, id int64, patch model.ProjectPatch) (model.Project, error)
	Delete(ctx context.Context, id int64) error
	GetPhase(ctx context.Context, id int64) (model.Project, error)
	AdvancePhase(ctx context.Context, id int64, next model.ProjectPhase) (model.Project, error)
	GetTeamRequirements(ctx context.Context, projectID int64) (model.TeamRequirements, error)
	UpdateTeamRequirements(ctx context.Context, projectID int64, input model.TeamRequirements) (model.TeamRequirements, error)
}

// TeamService описывает операции над составом команды.
type TeamService interface {
	Join(ctx context.Context, projectID, memberID int64, input model.TeamMembership) (model.TeamMembership, error)
	GetMember(ctx context.Context, projectID, memberID int64) (model.TeamMembership, error)
	Reject(ctx context.Context, projectID, memberID int64) error
	ListMembers(ctx context.Context, projectID int64) ([]model.TeamMembership, error)
}

// CompletionService выполняет выплаты по завершении проекта.
type CompletionService interface {
	CompleteProject(ctx context.Context, projectID int64) (model.CompletionSummary, error)
}

// ProfileService отдаёт кошелёк пользователя.
type ProfileService interface {
	GetWallet(ctx context.Context, userID int64) (model.Profile, []model.WalletTransaction, error)
}

// Options: настройки роутера, не относящиеся к бизнес-логике.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

type Handler struct {
	Projects    ProjectService
	Teams       TeamService
	Completions CompletionService
	Profiles    ProfileService
	Log         *slog.Logger

	opts    Options
	metrics *httpMetrics
}

func NewHandler(
	projects ProjectService,
	teams TeamService,
	completions CompletionService,
	profiles ProfileService,
	log *slog.Logger,
	opts Options,
) *Handler {
	return &Handler{
		Projects:    projects,
		Teams:       teams,
		Completions: completions,
		Profiles:    profiles,
		Log:         log,
		opts:        opts,
		metrics:     newHTTPMetrics(),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(h.instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Use(h.adminOrReadOnly)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.handleProjectList)
			r.Post("/", h.handleProjectCreate)

			r.Route("/{pk}", func(r chi.Router) {
				r.Get("/", h.handleProjectGet)
				r.Put("/", h.handleProjectUpdate)
				r.Patch("/", h.handleProjectPatch)
				r.Delete("/", h.handleProjectDelete)

				r.Get("/team-requirements", h.handleRequirementsGet)
				r.Put("/team-requirements", h.handleRequirementsUpdate)

				r.Get("/phase", h.handlePhaseGet)
				r.Patch("/phase", h.handlePhaseAdvance)

				r.Get("/complete", h.handleCompleteInfo)
				r.Post("/complete", h.handleComplete)

				r.Get("/team", h.handleTeamList)
				r.Post("/team/join", h.handleTeamJoin)
				r.Get("/team/{member_id}/reject", h.handleTeamMemberGet)
				r.Delete("/team/{member_id}/reject", h.handleTeamReject)

				r.Get("/issue", h.handleIssueInfo)
			})
		})

		r.Get("/profile", h.handleProfileGet)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	resp.Error.Fields = appErr.Fields
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса. Пустое тело ошибкой не считается.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return service.ErrBadRequest("invalid JSON")
	}
	return nil
}

// pathID разбирает положительный целочисленный параметр пути.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrBadRequest(name + " must be a positive integer")
	}
	return id, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
