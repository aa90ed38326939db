package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/service/predict"
	"github.com/heartmarshall/babyfeed-backend/internal/service/stats"
)

const (
	displayDateLayout = "Jan 2, 2006"
	clockLayout       = "15:04"
)

type statsService interface {
	Stats(ctx context.Context, now time.Time, loc *time.Location) (stats.Stats, error)
}

type predictService interface {
	NextFeed(ctx context.Context, now time.Time, loc *time.Location) (predict.Prediction, error)
}

// InsightsHandler serves the derived read-only views: volume statistics and
// the next-feed prediction.
type InsightsHandler struct {
	stats   statsService
	predict predictService
	loc     *time.Location
	now     func() time.Time
	log     *slog.Logger
}

// NewInsightsHandler creates an InsightsHandler.
func NewInsightsHandler(statsSvc statsService, predictSvc predictService, loc *time.Location, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{
		stats:   statsSvc,
		predict: predictSvc,
		loc:     loc,
		now:     time.Now,
		log:     logger.With("handler", "insights"),
	}
}

type volumeResponse struct {
	Amount int    `json:"amount"`
	Date   string `json:"date"`
}

type statsResponse struct {
	Error                 string         `json:"error,omitempty"`
	HighestVolume         volumeResponse `json:"highestVolume"`
	LowestVolume          volumeResponse `json:"lowestVolume"`
	HighestVolumeLastWeek volumeResponse `json:"highestVolumeLastWeek"`
	LowestVolumeLastWeek  volumeResponse `json:"lowestVolumeLastWeek"`
}

type countdownResponse struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type predictionHistoryResponse struct {
	Date          string `json:"date"`
	ActualTime    string `json:"actualTime"`
	PredictedTime string `json:"predictedTime"`
	FeedNumber    int    `json:"feedNumber"`
}

type nextFeedResponse struct {
	NextFeedIn        *countdownResponse          `json:"nextFeedIn"`
	Message           string                      `json:"message"`
	PredictionHistory []predictionHistoryResponse `json:"predictionHistory,omitempty"`
	AverageFeedTime   string                      `json:"averageFeedTime,omitempty"`
	FeedNumber        int                         `json:"feedNumber"`
}

// Stats handles GET /api/feeds/stats. A failed read still answers with the
// zeroed statistics, alongside 503 when the store is unavailable and 500
// otherwise.
func (h *InsightsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	loc, err := requestZone(r, h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	st, err := h.stats.Stats(r.Context(), h.now(), loc)
	resp := toStatsResponse(st)
	if err != nil {
		resp.Error = "failed to fetch feed statistics"
		if errors.Is(err, domain.ErrStoreUnavailable) {
			h.log.WarnContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		h.log.ErrorContext(r.Context(), "compute stats", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// NextFeed handles GET /api/feeds/next-feed.
func (h *InsightsHandler) NextFeed(w http.ResponseWriter, r *http.Request) {
	loc, err := requestZone(r, h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	p, err := h.predict.NextFeed(r.Context(), h.now(), loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNextFeedResponse(p, loc))
}

func toStatsResponse(st stats.Stats) statsResponse {
	return statsResponse{
		HighestVolume:         toVolumeResponse(st.HighestVolume),
		LowestVolume:          toVolumeResponse(st.LowestVolume),
		HighestVolumeLastWeek: toVolumeResponse(st.HighestVolumeLastWeek),
		LowestVolumeLastWeek:  toVolumeResponse(st.LowestVolumeLastWeek),
	}
}

func toVolumeResponse(t stats.DailyTotal) volumeResponse {
	date := t.Date
	if d, err := time.Parse(time.DateOnly, t.Date); err == nil {
		date = d.Format(displayDateLayout)
	}
	return volumeResponse{Amount: t.Total, Date: date}
}

func toNextFeedResponse(p predict.Prediction, loc *time.Location) nextFeedResponse {
	resp := nextFeedResponse{
		Message:    p.Message,
		FeedNumber: p.FeedNumber,
	}
	if p.NextFeedIn == nil {
		return resp
	}

	resp.NextFeedIn = &countdownResponse{Hours: p.NextFeedIn.Hours, Minutes: p.NextFeedIn.Minutes}
	resp.AverageFeedTime = p.AverageFeedTime.In(loc).Format(clockLayout)
	resp.PredictionHistory = make([]predictionHistoryResponse, len(p.History))
	for i, e := range p.History {
		resp.PredictionHistory[i] = predictionHistoryResponse{
			Date:          e.Date.In(loc).Format(displayDateLayout),
			ActualTime:    e.ActualTime.In(loc).Format(clockLayout),
			PredictedTime: e.PredictedTime.In(loc).Format(clockLayout),
			FeedNumber:    p.FeedNumber,
		}
	}
	return resp
}
