package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds a storage ping from a probe.
const pingTimeout = 3 * time.Second

// storagePinger is the minimal interface for storage health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage storagePinger
	driver  string
	version string
}

// NewHealthHandler creates a HealthHandler. driver names the storage
// component in /health output.
func NewHealthHandler(storage storagePinger, driver, version string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if storage answers a ping, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: storage ping with latency, plus version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.storage.Ping(ctx)
	latency := time.Since(start)

	comp := CompStatus{Status: "ok", Driver: h.driver, Latency: latency.String()}
	overall, status := "ok", http.StatusOK
	if err != nil {
		comp = CompStatus{Status: "down", Driver: h.driver}
		overall, status = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"storage": comp},
		Timestamp:  time.Now(),
	})
}
