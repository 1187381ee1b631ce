package http

import (
	"net/http"
	"strconv"
)

func (h *Handler) handleCompleteInfo(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_complete_info"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Finish the project with id: " + strconv.FormatInt(id, 10),
	})
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "project_complete"

	id, err := pathID(r, "pk")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	summary, err := h.Completions.CompleteProject(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
