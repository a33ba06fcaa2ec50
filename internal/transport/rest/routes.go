package rest

import "net/http"

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/search", h.Search)
	mux.HandleFunc("GET /api/state", h.State)
	mux.HandleFunc("GET /api/history", h.History)
	mux.HandleFunc("DELETE /api/history", h.ClearHistory)
	mux.HandleFunc("GET /api/session", h.Session)
	mux.HandleFunc("POST /api/session", h.Login)
	mux.HandleFunc("DELETE /api/session", h.Logout)
	mux.HandleFunc("GET /api/theme", h.Theme)
	mux.HandleFunc("PUT /api/theme", h.SetTheme)
}

// Register mounts the probe routes on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}
