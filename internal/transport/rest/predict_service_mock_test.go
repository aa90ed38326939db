package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/service/predict"
)

var _ predictService = &predictServiceMock{}

type predictServiceMock struct {
	NextFeedFunc func(ctx context.Context, now time.Time, loc *time.Location) (predict.Prediction, error)

	calls struct {
		NextFeed []struct {
			Ctx context.Context
			Now time.Time
			Loc *time.Location
		}
	}
	lockNextFeed sync.RWMutex
}

func (mock *predictServiceMock) NextFeed(ctx context.Context, now time.Time, loc *time.Location) (predict.Prediction, error) {
	if mock.NextFeedFunc == nil {
		panic("predictServiceMock.NextFeedFunc: method is nil but predictService.NextFeed was just called")
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
	mock.lockNextFeed.Lock()
	mock.calls.NextFeed = append(mock.calls.NextFeed, callInfo)
	mock.lockNextFeed.Unlock()
	return mock.NextFeedFunc(ctx, now, loc)
}

func (mock *predictServiceMock) NextFeedCalls() []struct {
	Ctx context.Context
	Now time.Time
	Loc *time.Location
} {
	mock.lockNextFeed.RLock()
	calls := mock.calls.NextFeed
	mock.lockNextFeed.RUnlock()
	return calls
}
