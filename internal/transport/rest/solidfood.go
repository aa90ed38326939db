package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/service/solidfood"
)

type solidFoodService interface {
	Catalog(ctx context.Context) ([]solidfood.FoodSighting, error)
	Rename(ctx context.Context, input solidfood.RenameInput) (solidfood.RewriteResult, error)
}

// SolidFoodHandler serves the solid-food catalog and bulk rename.
type SolidFoodHandler struct {
	svc solidFoodService
	log *slog.Logger
}

// NewSolidFoodHandler creates a SolidFoodHandler.
func NewSolidFoodHandler(svc solidFoodService, logger *slog.Logger) *SolidFoodHandler {
	return &SolidFoodHandler{svc: svc, log: logger.With("handler", "solidfood")}
}

type foodSightingResponse struct {
	Food      string    `json:"food"`
	Timestamp time.Time `json:"timestamp"`
}

type catalogResponse struct {
	SolidFoods []foodSightingResponse `json:"solidFoods"`
}

type renameRequest struct {
	OldFood string `json:"oldFood"`
	NewFood string `json:"newFood"`
}

type renameResponse struct {
	Error   string `json:"error,omitempty"`
	Matched int    `json:"matched"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

// Catalog handles GET /api/feeds/solid-foods.
func (h *SolidFoodHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	sightings, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := catalogResponse{SolidFoods: make([]foodSightingResponse, len(sightings))}
	for i, s := range sightings {
		resp.SolidFoods[i] = foodSightingResponse{Food: s.Food, Timestamp: s.LastSeen.UTC()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rename handles POST /api/feeds/solid-foods/rename. When some records fail
// the counts are still reported, with status 500; the call is safe to repeat.
func (h *SolidFoodHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Rename(r.Context(), solidfood.RenameInput{OldFood: req.OldFood, NewFood: req.NewFood})
	resp := renameResponse{Matched: res.Matched, Updated: res.Updated, Failed: res.Failed}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, domain.ErrPartialFailure):
		h.log.ErrorContext(r.Context(), "rename partially failed", slog.String("error", err.Error()))
		resp.Error = "some records could not be updated, retry to finish"
		writeJSON(w, http.StatusInternalServerError, resp)
	default:
		writeServiceError(w, r, h.log, err)
	}
}
