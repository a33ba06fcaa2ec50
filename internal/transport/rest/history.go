package rest

import (
	"net/http"

	"github.com/heartmarshall/leximind/internal/domain"
)

type historyResponse struct {
	Items []domain.HistoryItem `json:"items"`
}

// History handles GET /api/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	items := h.history.History()
	if items == nil {
		items = []domain.HistoryItem{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items})
}

// ClearHistory handles DELETE /api/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.ClearHistory(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
