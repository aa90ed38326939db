package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/service/gate"
)

type gateService interface {
	Unlock(ctx context.Context, input gate.UnlockInput) (gate.Session, error)
}

// GateHandler serves the shared-secret date unlock.
type GateHandler struct {
	svc gateService
	log *slog.Logger
}

// NewGateHandler creates a GateHandler.
func NewGateHandler(svc gateService, logger *slog.Logger) *GateHandler {
	return &GateHandler{svc: svc, log: logger.With("handler", "gate")}
}

type unlockRequest struct {
	Date string `json:"date"`
}

type unlockResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Unlock handles POST /auth/unlock.
func (h *GateHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.Unlock(r.Context(), gate.UnlockInput{Date: req.Date})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, unlockResponse{Token: session.Token, ExpiresAt: session.ExpiresAt.UTC()})
}
