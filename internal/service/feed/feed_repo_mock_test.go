package feed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

var _ feedRepo = &feedRepoMock{}

type feedRepoMock struct {
	ListInRangeFunc func(ctx context.Context, start time.Time, end time.Time) ([]domain.Feed, error)
	LastPoopedFunc  func(ctx context.Context) (*domain.Feed, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	CreateFunc      func(ctx context.Context, f *domain.Feed) (*domain.Feed, error)
	UpdateFunc      func(ctx context.Context, f *domain.Feed) (*domain.Feed, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Start time.Time
			End   time.Time
		}
		LastPooped []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			F   *domain.Feed
		}
		Update []struct {
			Ctx context.Context
			F   *domain.Feed
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListInRange sync.RWMutex
	lockLastPooped  sync.RWMutex
	lockGetByID     sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *feedRepoMock) ListInRange(ctx context.Context, start time.Time, end time.Time) ([]domain.Feed, error) {
	if mock.ListInRangeFunc == nil {
		panic("feedRepoMock.ListInRangeFunc: method is nil but feedRepo.ListInRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Start time.Time
		End   time.Time
	}{
		Ctx:   ctx,
		Start: start,
		End:   end,
	}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, start, end)
}

func (mock *feedRepoMock) ListInRangeCalls() []struct {
	Ctx   context.Context
	Start time.Time
	End   time.Time
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *feedRepoMock) LastPooped(ctx context.Context) (*domain.Feed, error) {
	if mock.LastPoopedFunc == nil {
		panic("feedRepoMock.LastPoopedFunc: method is nil but feedRepo.LastPooped was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLastPooped.Lock()
	mock.calls.LastPooped = append(mock.calls.LastPooped, callInfo)
	mock.lockLastPooped.Unlock()
	return mock.LastPoopedFunc(ctx)
}

func (mock *feedRepoMock) LastPoopedCalls() []struct {
	Ctx context.Context
} {
	mock.lockLastPooped.RLock()
	calls := mock.calls.LastPooped
	mock.lockLastPooped.RUnlock()
	return calls
}

func (mock *feedRepoMock) Create(ctx context.Context, f *domain.Feed) (*domain.Feed, error) {
	if mock.CreateFunc == nil {
		panic("feedRepoMock.CreateFunc: method is nil but feedRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feed
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feed
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedRepoMock) Update(ctx context.Context, f *domain.Feed) (*domain.Feed, error) {
	if mock.UpdateFunc == nil {
		panic("feedRepoMock.UpdateFunc: method is nil but feedRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feed
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, f)
}

func (mock *feedRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	F   *domain.Feed
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *feedRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("feedRepoMock.DeleteFunc: method is nil but feedRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *feedRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *feedRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	if mock.GetByIDFunc == nil {
		panic("feedRepoMock.GetByIDFunc: method is nil but feedRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *feedRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
