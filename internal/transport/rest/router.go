package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/babyfeed-backend/internal/transport/middleware"
)

// Routes bundles the handlers and per-route middleware mounted by NewRouter.
type Routes struct {
	Health     *HealthHandler
	Feeds      *FeedHandler
	Insights   *InsightsHandler
	SolidFoods *SolidFoodHandler
	Gate       *GateHandler

	// Guard protects /api/*. Nil leaves the API open.
	Guard middleware.Middleware
	// UnlockLimit throttles /auth/unlock. Nil disables throttling.
	UnlockLimit middleware.Middleware
	// Metrics serves /metrics. Nil uses the default Prometheus registry.
	Metrics http.Handler
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	guard := middleware.Chain(rt.Guard)
	limit := middleware.Chain(rt.UnlockLimit)
	metricsHandler := rt.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	mux.Handle("GET /metrics", metricsHandler)

	mux.Handle("POST /auth/unlock", limit(http.HandlerFunc(rt.Gate.Unlock)))

	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, guard(h))
	}
	api("GET /api/feeds", rt.Feeds.List)
	api("GET /api/feeds/{id}", rt.Feeds.Get)
	api("POST /api/feeds", rt.Feeds.Create)
	api("PUT /api/feeds", rt.Feeds.Update)
	api("PUT /api/feeds/{id}", rt.Feeds.Update)
	api("DELETE /api/feeds", rt.Feeds.Delete)
	api("DELETE /api/feeds/{id}", rt.Feeds.Delete)
	api("GET /api/feeds/last-poop", rt.Feeds.LastPoop)
	api("GET /api/feeds/stats", rt.Insights.Stats)
	api("GET /api/feeds/next-feed", rt.Insights.NextFeed)
	api("GET /api/feeds/solid-foods", rt.SolidFoods.Catalog)
	api("POST /api/feeds/solid-foods/rename", rt.SolidFoods.Rename)

	return mux
}
