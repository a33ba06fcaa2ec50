package rest

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/leximind/internal/domain"
)

type searchRequest struct {
	Word string `json:"word"`
}

// Search handles POST /api/search.
//
// A lookup failure still answers with the display state so the client can
// show the error panel: 404 for unknown words, 502 for everything else.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	state, err := h.lookup.Search(r.Context(), req.Word)
	if err != nil {
		var le *domain.LookupError
		if errors.As(err, &le) {
			status := http.StatusBadGateway
			if le.Kind == domain.LookupNotFound {
				status = http.StatusNotFound
			}
			writeJSON(w, status, state)
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// State handles GET /api/state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.lookup.State())
}
