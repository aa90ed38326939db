package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/babyfeed-backend/internal/service/gate"
)

var _ gateService = &gateServiceMock{}

type gateServiceMock struct {
	UnlockFunc func(ctx context.Context, input gate.UnlockInput) (gate.Session, error)

	calls struct {
		Unlock []struct {
			Ctx   context.Context
			Input gate.UnlockInput
		}
	}
	lockUnlock sync.RWMutex
}

func (mock *gateServiceMock) Unlock(ctx context.Context, input gate.UnlockInput) (gate.Session, error) {
	if mock.UnlockFunc == nil {
		panic("gateServiceMock.UnlockFunc: method is nil but gateService.Unlock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input gate.UnlockInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUnlock.Lock()
	mock.calls.Unlock = append(mock.calls.Unlock, callInfo)
	mock.lockUnlock.Unlock()
	return mock.UnlockFunc(ctx, input)
}

func (mock *gateServiceMock) UnlockCalls() []struct {
	Ctx   context.Context
	Input gate.UnlockInput
} {
	mock.lockUnlock.RLock()
	calls := mock.calls.Unlock
	mock.lockUnlock.RUnlock()
	return calls
}
