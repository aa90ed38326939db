package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/service/stats"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	StatsFunc func(ctx context.Context, now time.Time, loc *time.Location) (stats.Stats, error)

	calls struct {
		Stats []struct {
			Ctx context.Context
			Now time.Time
			Loc *time.Location
		}
	}
	lockStats sync.RWMutex
}

func (mock *statsServiceMock) Stats(ctx context.Context, now time.Time, loc *time.Location) (stats.Stats, error) {
	if mock.StatsFunc == nil {
		panic("statsServiceMock.StatsFunc: method is nil but statsService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
		Loc *time.Location
	}{
		Ctx: ctx,
		Now: now,
		Loc: loc,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, now, loc)
}

func (mock *statsServiceMock) StatsCalls() []struct {
	Ctx context.Context
	Now time.Time
	Loc *time.Location
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
