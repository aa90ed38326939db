package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
)

// Metrics returns middleware that records request count and latency per
// route pattern. It must wrap the ServeMux directly: the mux sets
// r.Pattern on the request it receives.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(r.Method, route, sw.status, time.Since(start).Seconds())
		})
	}
}
