package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/service/feed"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	ListDay(ctx context.Context, date time.Time, loc *time.Location) ([]domain.Feed, error)
	GetFeed(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	CreateFeed(ctx context.Context, input feed.CreateFeedInput) (*domain.Feed, error)
	UpdateFeed(ctx context.Context, input feed.UpdateFeedInput) (*domain.Feed, error)
	DeleteFeed(ctx context.Context, input feed.DeleteFeedInput) error
	LastPoop(ctx context.Context, now time.Time) (feed.LastPoop, error)
}

// FeedHandler serves feed CRUD and the last-poop query.
type FeedHandler struct {
	svc feedService
	loc *time.Location
	now func() time.Time
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler. loc is the zone used when a request
// names neither tz nor offset.
func NewFeedHandler(svc feedService, loc *time.Location, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, loc: loc, now: time.Now, log: logger.With("handler", "feed")}
}

type feedRequest struct {
	FeedTime   time.Time `json:"feedTime"`
	Amount     int       `json:"amount"`
	WetDiaper  bool      `json:"wetDiaper"`
	Pooped     bool      `json:"pooped"`
	SolidFoods []string  `json:"solidFoods"`
}

type feedResponse struct {
	ID         string    `json:"id"`
	FeedTime   time.Time `json:"feedTime"`
	Amount     int       `json:"amount"`
	WetDiaper  bool      `json:"wetDiaper"`
	Pooped     bool      `json:"pooped"`
	SolidFoods []string  `json:"solidFoods"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type lastPoopResponse struct {
	Days     int        `json:"days"`
	Hours    int        `json:"hours"`
	Message  string     `json:"message"`
	FeedTime *time.Time `json:"feedTime,omitempty"`
}

// List handles GET /api/feeds?date=YYYY-MM-DD. Without a date it lists today.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	loc, err := requestZone(r, h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		if date, err = domain.ParseDate(raw, loc); err != nil {
			writeServiceError(w, r, h.log, err)
			return
		}
	}

	feeds, err := h.svc.ListDay(r.Context(), date, loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]feedResponse, len(feeds))
	for i := range feeds {
		resp[i] = toFeedResponse(&feeds[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/feeds/{id}.
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.feedID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.GetFeed(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedResponse(f))
}

// Create handles POST /api/feeds.
func (h *FeedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.CreateFeed(r.Context(), feed.CreateFeedInput{
		FeedTime:   req.FeedTime,
		Amount:     req.Amount,
		WetDiaper:  req.WetDiaper,
		Pooped:     req.Pooped,
		SolidFoods: req.SolidFoods,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFeedResponse(created))
}

// Update handles PUT /api/feeds/{id} and PUT /api/feeds?id=.
func (h *FeedHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.feedID(w, r)
	if !ok {
		return
	}

	var req feedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateFeed(r.Context(), feed.UpdateFeedInput{
		ID:         id,
		FeedTime:   req.FeedTime,
		Amount:     req.Amount,
		WetDiaper:  req.WetDiaper,
		Pooped:     req.Pooped,
		SolidFoods: req.SolidFoods,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedResponse(updated))
}

// Delete handles DELETE /api/feeds/{id} and DELETE /api/feeds?id=.
func (h *FeedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.feedID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteFeed(r.Context(), feed.DeleteFeedInput{ID: id}); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// LastPoop handles GET /api/feeds/last-poop.
func (h *FeedHandler) LastPoop(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.LastPoop(r.Context(), h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lastPoopResponse{
		Days:     res.Days,
		Hours:    res.Hours,
		Message:  res.Message,
		FeedTime: res.FeedTime,
	})
}

// feedID reads the feed ID from the {id} path segment or the id query
// parameter.
func (h *FeedHandler) feedID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		raw = r.URL.Query().Get("id")
	}
	if raw == "" {
		writeServiceError(w, r, h.log, domain.NewValidationError("id", "required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toFeedResponse(f *domain.Feed) feedResponse {
	foods := f.SolidFoods
	if foods == nil {
		foods = []string{}
	}
	return feedResponse{
		ID:         f.ID.String(),
		FeedTime:   f.FeedTime.UTC(),
		Amount:     f.Amount,
		WetDiaper:  f.WetDiaper,
		Pooped:     f.Pooped,
		SolidFoods: foods,
		CreatedAt:  f.CreatedAt.UTC(),
		UpdatedAt:  f.UpdatedAt.UTC(),
	}
}
