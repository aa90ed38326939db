// Package metrics provides Prometheus metrics for the babyfeed backend.
package metrics

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "babyfeed"

var (
	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// FeedsLoggedTotal counts feed write commands.
	FeedsLoggedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_commands_total",
			Help:      "Total number of feed create/update/delete commands",
		},
		[]string{"operation"},
	)

	// FoodRewritesTotal counts records touched by rename and normalize runs.
	FoodRewritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "food_rewrites_total",
			Help:      "Records processed by solid-food rewrites",
		},
		[]string{"operation", "outcome"},
	)

	// UnlockAttemptsTotal counts date gate unlock attempts.
	UnlockAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unlock_attempts_total",
			Help:      "Total number of unlock attempts",
		},
		[]string{"result"},
	)

	// PredictionsTotal counts next-feed predictions.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total number of next-feed predictions",
		},
		[]string{"available"},
	)
)

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordFeedCommand records a successful feed write.
func RecordFeedCommand(operation string) {
	FeedsLoggedTotal.WithLabelValues(operation).Inc()
}

// RecordFoodRewrite records the outcome counts of a rewrite run.
func RecordFoodRewrite(operation string, updated, failed int) {
	FoodRewritesTotal.WithLabelValues(operation, "updated").Add(float64(updated))
	FoodRewritesTotal.WithLabelValues(operation, "failed").Add(float64(failed))
}

// RecordUnlock records an unlock attempt result: "ok", "denied", "invalid" or "disabled".
func RecordUnlock(result string) {
	UnlockAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordPrediction records whether a prediction could be made.
func RecordPrediction(available bool) {
	PredictionsTotal.WithLabelValues(strconv.FormatBool(available)).Inc()
}

// RegisterPoolStats exposes connection pool gauges on reg.
func RegisterPoolStats(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_total_conns",
			Help:      "Total connections in the database pool",
		}, func() float64 { return float64(pool.Stat().TotalConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_acquired_conns",
			Help:      "Connections currently acquired from the database pool",
		}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle_conns",
			Help:      "Idle connections in the database pool",
		}, func() float64 { return float64(pool.Stat().IdleConns()) }),
	}
	for _, g := range gauges {
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}
