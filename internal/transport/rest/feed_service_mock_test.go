package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/service/feed"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ListDayFunc    func(ctx context.Context, date time.Time, loc *time.Location) ([]domain.Feed, error)
	GetFeedFunc    func(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	CreateFeedFunc func(ctx context.Context, input feed.CreateFeedInput) (*domain.Feed, error)
	UpdateFeedFunc func(ctx context.Context, input feed.UpdateFeedInput) (*domain.Feed, error)
	DeleteFeedFunc func(ctx context.Context, input feed.DeleteFeedInput) error
	LastPoopFunc   func(ctx context.Context, now time.Time) (feed.LastPoop, error)

	calls struct {
		ListDay []struct {
			Ctx  context.Context
			Date time.Time
			Loc  *time.Location
		}
		GetFeed []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateFeed []struct {
			Ctx   context.Context
			Input feed.CreateFeedInput
		}
		UpdateFeed []struct {
			Ctx   context.Context
			Input feed.UpdateFeedInput
		}
		DeleteFeed []struct {
			Ctx   context.Context
			Input feed.DeleteFeedInput
		}
		LastPoop []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockListDay    sync.RWMutex
	lockGetFeed    sync.RWMutex
	lockCreateFeed sync.RWMutex
	lockUpdateFeed sync.RWMutex
	lockDeleteFeed sync.RWMutex
	lockLastPoop   sync.RWMutex
}

func (mock *feedServiceMock) ListDay(ctx context.Context, date time.Time, loc *time.Location) ([]domain.Feed, error) {
	if mock.ListDayFunc == nil {
		panic("feedServiceMock.ListDayFunc: method is nil but feedService.ListDay was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
		Loc  *time.Location
	}{
		Ctx:  ctx,
		Date: date,
		Loc:  loc,
	}
	mock.lockListDay.Lock()
	mock.calls.ListDay = append(mock.calls.ListDay, callInfo)
	mock.lockListDay.Unlock()
	return mock.ListDayFunc(ctx, date, loc)
}

func (mock *feedServiceMock) ListDayCalls() []struct {
	Ctx  context.Context
	Date time.Time
	Loc  *time.Location
} {
	mock.lockListDay.RLock()
	calls := mock.calls.ListDay
	mock.lockListDay.RUnlock()
	return calls
}

func (mock *feedServiceMock) CreateFeed(ctx context.Context, input feed.CreateFeedInput) (*domain.Feed, error) {
	if mock.CreateFeedFunc == nil {
		panic("feedServiceMock.CreateFeedFunc: method is nil but feedService.CreateFeed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feed.CreateFeedInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateFeed.Lock()
	mock.calls.CreateFeed = append(mock.calls.CreateFeed, callInfo)
	mock.lockCreateFeed.Unlock()
	return mock.CreateFeedFunc(ctx, input)
}

func (mock *feedServiceMock) CreateFeedCalls() []struct {
	Ctx   context.Context
	Input feed.CreateFeedInput
} {
	mock.lockCreateFeed.RLock()
	calls := mock.calls.CreateFeed
	mock.lockCreateFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) UpdateFeed(ctx context.Context, input feed.UpdateFeedInput) (*domain.Feed, error) {
	if mock.UpdateFeedFunc == nil {
		panic("feedServiceMock.UpdateFeedFunc: method is nil but feedService.UpdateFeed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feed.UpdateFeedInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateFeed.Lock()
	mock.calls.UpdateFeed = append(mock.calls.UpdateFeed, callInfo)
	mock.lockUpdateFeed.Unlock()
	return mock.UpdateFeedFunc(ctx, input)
}

func (mock *feedServiceMock) UpdateFeedCalls() []struct {
	Ctx   context.Context
	Input feed.UpdateFeedInput
} {
	mock.lockUpdateFeed.RLock()
	calls := mock.calls.UpdateFeed
	mock.lockUpdateFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) DeleteFeed(ctx context.Context, input feed.DeleteFeedInput) error {
	if mock.DeleteFeedFunc == nil {
		panic("feedServiceMock.DeleteFeedFunc: method is nil but feedService.DeleteFeed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feed.DeleteFeedInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteFeed.Lock()
	mock.calls.DeleteFeed = append(mock.calls.DeleteFeed, callInfo)
	mock.lockDeleteFeed.Unlock()
	return mock.DeleteFeedFunc(ctx, input)
}

func (mock *feedServiceMock) DeleteFeedCalls() []struct {
	Ctx   context.Context
	Input feed.DeleteFeedInput
} {
	mock.lockDeleteFeed.RLock()
	calls := mock.calls.DeleteFeed
	mock.lockDeleteFeed.RUnlock()
	return calls
}

func (mock *feedServiceMock) LastPoop(ctx context.Context, now time.Time) (feed.LastPoop, error) {
	if mock.LastPoopFunc == nil {
		panic("feedServiceMock.LastPoopFunc: method is nil but feedService.LastPoop was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockLastPoop.Lock()
	mock.calls.LastPoop = append(mock.calls.LastPoop, callInfo)
	mock.lockLastPoop.Unlock()
	return mock.LastPoopFunc(ctx, now)
}

func (mock *feedServiceMock) LastPoopCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockLastPoop.RLock()
	calls := mock.calls.LastPoop
	mock.lockLastPoop.RUnlock()
	return calls
}

func (mock *feedServiceMock) GetFeed(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	if mock.GetFeedFunc == nil {
		panic("feedServiceMock.GetFeedFunc: method is nil but feedService.GetFeed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetFeed.Lock()
	mock.calls.GetFeed = append(mock.calls.GetFeed, callInfo)
	mock.lockGetFeed.Unlock()
	return mock.GetFeedFunc(ctx, id)
}

func (mock *feedServiceMock) GetFeedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetFeed.RLock()
	calls := mock.calls.GetFeed
	mock.lockGetFeed.RUnlock()
	return calls
}
