package stats

import (
	"context"
	"sync"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

var _ feedRepo = &feedRepoMock{}

type feedRepoMock struct {
	ListAllFunc func(ctx context.Context) ([]domain.Feed, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
}

func (mock *feedRepoMock) ListAll(ctx context.Context) ([]domain.Feed, error) {
	if mock.ListAllFunc == nil {
		panic("feedRepoMock.ListAllFunc: method is nil but feedRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *feedRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
