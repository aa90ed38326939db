package predict

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

var _ feedRepo = &feedRepoMock{}

type feedRepoMock struct {
	ListInRangeFunc func(ctx context.Context, start, end time.Time) ([]domain.Feed, error)

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Start time.Time
			End   time.Time
		}
	}
	lockListInRange sync.RWMutex
}

func (mock *feedRepoMock) ListInRange(ctx context.Context, start, end time.Time) ([]domain.Feed, error) {
	if mock.ListInRangeFunc == nil {
		panic("feedRepoMock.ListInRangeFunc: method is nil but feedRepo.ListInRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Start time.Time
		End   time.Time
	}{Ctx: ctx, Start: start, End: end}
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
