package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)

type testDeps struct {
	feeds   *feedServiceMock
	stats   *statsServiceMock
	predict *predictServiceMock
	foods   *solidFoodServiceMock
	gate    *gateServiceMock
	guard   func(http.Handler) http.Handler
}

func newTestServer(t *testing.T, deps testDeps) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fill(&deps)

	feeds := NewFeedHandler(deps.feeds, time.UTC, logger)
	feeds.now = func() time.Time { return testNow }
	insights := NewInsightsHandler(deps.stats, deps.predict, time.UTC, logger)
	insights.now = func() time.Time { return testNow }

	return NewRouter(Routes{
		Health:     NewHealthHandler(&dbPingerMock{}, "test", deps.guard != nil),
		Feeds:      feeds,
		Insights:   insights,
		SolidFoods: NewSolidFoodHandler(deps.foods, logger),
		Gate:       NewGateHandler(deps.gate, logger),
		Guard:      deps.guard,
	})
}

func fill(d *testDeps) {
	if d.feeds == nil {
		d.feeds = &feedServiceMock{}
	}
	if d.stats == nil {
		d.stats = &statsServiceMock{}
	}
	if d.predict == nil {
		d.predict = &predictServiceMock{}
	}
	if d.foods == nil {
		d.foods = &solidFoodServiceMock{}
	}
	if d.gate == nil {
		d.gate = &gateServiceMock{}
	}
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
