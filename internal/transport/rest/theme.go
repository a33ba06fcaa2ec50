package rest

import (
	"net/http"

	"github.com/heartmarshall/leximind/internal/domain"
)

type themeBody struct {
	Theme string `json:"theme"`
}

// Theme handles GET /api/theme.
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Theme(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, themeBody{Theme: string(theme)})
}

// SetTheme handles PUT /api/theme.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeBody
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	theme, err := domain.ParseTheme(req.Theme)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.themes.SetTheme(r.Context(), theme); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, themeBody{Theme: string(theme)})
}
