package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/babyfeed-backend/pkg/ctxutil"
)

func TestRecovery_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(slog.New(slog.NewTextHandler(&buf, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/feeds", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_Panic(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "nil feed", want: "nil feed"},
		{name: "error", value: http.ErrNoCookie, want: http.ErrNoCookie.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

			h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/feeds/stats", nil)
			req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-panic"))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "internal server error", strings.TrimSpace(rec.Body.String()))

			out := buf.String()
			assert.Contains(t, out, "panic recovered")
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "request_id=req-panic")
			assert.Contains(t, out, "path=/api/feeds/stats")
			assert.Contains(t, out, "stack=")
		})
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	h := Recovery(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		assert.Equal(t, http.ErrAbortHandler, recover())
	}()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/feeds", nil))
	t.Error("expected panic to propagate")
}
