package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
	"github.com/heartmarshall/babyfeed-backend/internal/transport/middleware"
	"github.com/heartmarshall/babyfeed-backend/internal/transport/rest"
)

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) error {
	if err := metrics.RegisterPoolStats(prometheus.DefaultRegisterer, pool); err != nil {
		logger.Warn("register pool metrics", slog.String("error", err.Error()))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	svc := NewServices(logger, cfg, pool)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(logger, cfg, pool, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logger.Info("application stopped")
	return err
}

// pinger is the readiness dependency, normally the pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler builds the full HTTP handler: routes plus the global
// middleware chain. /api routes require a session token only when the date
// gate is configured.
func NewHandler(logger *slog.Logger, cfg *config.Config, db pinger, svc *Services, limiter *middleware.RateLimiter) http.Handler {
	loc := cfg.Feeds.Location

	var guard middleware.Middleware
	if svc.Gate.Enabled() {
		guard = middleware.Auth(svc.Sessions)
	}

	mux := rest.NewRouter(rest.Routes{
		Health:      rest.NewHealthHandler(db, BuildVersion(), svc.Gate.Enabled()),
		Feeds:       rest.NewFeedHandler(svc.Feeds, loc, logger),
		Insights:    rest.NewInsightsHandler(svc.Stats, svc.Predict, loc, logger),
		SolidFoods:  rest.NewSolidFoodHandler(svc.SolidFoods, logger),
		Gate:        rest.NewGateHandler(svc.Gate, logger),
		Guard:       guard,
		UnlockLimit: limiter.Limit(cfg.RateLimit.UnlockPerMinute, cfg.RateLimit.UnlockBurst),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(),
	)(mux)
}
