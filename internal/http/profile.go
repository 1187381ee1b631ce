package http

import "net/http"

func (h *Handler) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "profile_get"

	p, _ := principalFromContext(r.Context())
	profile, txs, err := h.Profiles.GetWallet(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Profile: profile, Transactions: txs})
}
