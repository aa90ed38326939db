package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/babyfeed-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, session_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r = r.WithContext(context.WithValue(r.Context(), sessionSlotKey{}, &sessionSlot{}))

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String(ctxutil.RequestIDKey, ctxutil.RequestIDFromCtx(r.Context())),
			}
			if sessionID, ok := sessionFromRequest(r); ok {
				attrs = append(attrs, slog.String(ctxutil.SessionIDKey, sessionID))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status == http.StatusTooManyRequests || sw.status == http.StatusUnauthorized:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// sessionFromRequest reads the session ID that Auth attached. Auth runs
// inside the mux, so it publishes the ID through the shared sessionSlot.
func sessionFromRequest(r *http.Request) (string, bool) {
	if id, ok := ctxutil.SessionIDFromCtx(r.Context()); ok {
		return id.String(), true
	}
	if slot, ok := r.Context().Value(sessionSlotKey{}).(*sessionSlot); ok && slot.id != "" {
		return slot.id, true
	}
	return "", false
}

type sessionSlotKey struct{}

type sessionSlot struct {
	id string
}

// publishSession records the authenticated session for the request logger.
func publishSession(ctx context.Context, id string) {
	if slot, ok := ctx.Value(sessionSlotKey{}).(*sessionSlot); ok {
		slot.id = id
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
