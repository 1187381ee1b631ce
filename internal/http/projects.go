package http

import (
	"net/http"
	"strconv"

	"crowdfund-service/internal/model"
)

func (h *Handler) handleProjectList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_list"

	filter := model.ProjectFilter{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}

	projects, err := h.Projects.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, projectListResponse{Count: len(projects), Results: projects})
}

func (h *Handler) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_create"

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	p, _ := principalFromContext(r.Context())
	project, err := h.Projects.Create(r.Context(), model.Project{
		Name:        req.Name,
		Description: req.Description,
	}, p.UserID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *Handler) handleProjectGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_get"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	project, err := h.Projects.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_update"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	project, err := h.Projects.Update(r.Context(), id, model.Project{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) handleProjectPatch(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_patch"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req projectPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	project, err := h.Projects.Patch(r.Context(), id, model.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_delete"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Projects.Delete(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRequirementsGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_requirements_get"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	req, err := h.Projects.GetTeamRequirements(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handleRequirementsUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_requirements_update"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var body requirementsRequest
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	req, err := h.Projects.UpdateTeamRequirements(r.Context(), id, model.TeamRequirements{
		TeamSize:    body.TeamSize,
		Skills:      body.Skills,
		Description: body.Description,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) handlePhaseGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "phase_get"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	project, err := h.Projects.GetPhase(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, phaseResponse{ID: project.ID, Name: project.Name, Phase: project.Phase})
}

func (h *Handler) handlePhaseAdvance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "phase_advance"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req phaseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	project, err := h.Projects.AdvancePhase(r.Context(), id, req.Phase)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, phaseResponse{ID: project.ID, Name: project.Name, Phase: project.Phase})
}

func (h *Handler) handleIssueInfo(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_issue_info"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Report an issue for the project with id: " + strconv.FormatInt(id, 10),
	})
}
