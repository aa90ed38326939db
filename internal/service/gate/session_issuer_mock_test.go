package gate

import (
	"sync"
	"time"
)

var _ sessionIssuer = &sessionIssuerMock{}

type sessionIssuerMock struct {
	GenerateSessionTokenFunc func() (string, time.Time, error)

	calls struct {
		GenerateSessionToken []struct{}
	}
	lockGenerateSessionToken sync.RWMutex
}

func (mock *sessionIssuerMock) GenerateSessionToken() (string, time.Time, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("sessionIssuerMock.GenerateSessionTokenFunc: method is nil but sessionIssuer.GenerateSessionToken was just called")
	}
	callInfo := struct{}{}
	mock.lockGenerateSessionToken.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, callInfo)
	mock.lockGenerateSessionToken.Unlock()
	return mock.GenerateSessionTokenFunc()
}

func (mock *sessionIssuerMock) GenerateSessionTokenCalls() []struct{} {
	mock.lockGenerateSessionToken.RLock()
	calls := mock.calls.GenerateSessionToken
	mock.lockGenerateSessionToken.RUnlock()
	return calls
}
