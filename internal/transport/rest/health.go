package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	db        dbPinger
	version   string
	gateOn    bool
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler. gateEnabled is reported so
// clients know whether /auth/unlock is required.
func NewHealthHandler(db dbPinger, version string, gateEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, version: version, gateOn: gateEnabled, startedAt: time.Now()}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status      string                `json:"status"`
	Version     string                `json:"version,omitempty"`
	Uptime      string                `json:"uptime,omitempty"`
	GateEnabled *bool                 `json:"gateEnabled,omitempty"`
	Components  map[string]CompStatus `json:"components,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the feed store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
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

// Health is the full health check: store latency, version, uptime and
// whether the date gate is on.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	db := CompStatus{Status: "ok", Latency: latency.String()}
	overall, status := "ok", http.StatusOK
	if err != nil {
		db = CompStatus{Status: "down", Error: err.Error()}
		overall, status = "down", http.StatusServiceUnavailable
	}

	gateOn := h.gateOn
	writeJSON(w, status, HealthResponse{
		Status:      overall,
		Version:     h.version,
		Uptime:      time.Since(h.startedAt).Truncate(time.Second).String(),
		GateEnabled: &gateOn,
		Components:  map[string]CompStatus{"database": db},
		Timestamp:   time.Now(),
	})
}
