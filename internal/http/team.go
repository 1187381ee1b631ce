package http

import (
	"net/http"

	"crowdfund-service/internal/model"
)

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	members, err := h.Teams.ListMembers(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, teamListResponse{Project: id, Members: members})
}

func (h *Handler) handleTeamJoin(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_join"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req joinRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	p, _ := principalFromContext(r.Context())
	m, err := h.Teams.Join(r.Context(), id, p.UserID, model.TeamMembership{
		Role:       req.Role,
		Motivation: req.Motivation,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handleTeamMemberGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_member_get"

	projectID, memberID, err := teamPathIDs(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	m, err := h.Teams.GetMember(r.Context(), projectID, memberID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) handleTeamReject(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_reject"

	projectID, memberID, err := teamPathIDs(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Teams.Reject(r.Context(), projectID, memberID); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func teamPathIDs(r *http.Request) (int64, int64, error) {
	projectID, err := pathID(r, "pk")
	if err != nil {
		return 0, 0, err
	}
	memberID, err := pathID(r, "member_id")
	if err != nil {
		return 0, 0, err
	}
	return projectID, memberID, nil
}
