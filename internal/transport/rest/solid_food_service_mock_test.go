package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/babyfeed-backend/internal/service/solidfood"
)

var _ solidFoodService = &solidFoodServiceMock{}

type solidFoodServiceMock struct {
	CatalogFunc func(ctx context.Context) ([]solidfood.FoodSighting, error)
	RenameFunc  func(ctx context.Context, input solidfood.RenameInput) (solidfood.RewriteResult, error)

	calls struct {
		Catalog []struct {
			Ctx context.Context
		}
		Rename []struct {
			Ctx   context.Context
			Input solidfood.RenameInput
		}
	}
	lockCatalog sync.RWMutex
	lockRename  sync.RWMutex
}

func (mock *solidFoodServiceMock) Catalog(ctx context.Context) ([]solidfood.FoodSighting, error) {
	if mock.CatalogFunc == nil {
		panic("solidFoodServiceMock.CatalogFunc: method is nil but solidFoodService.Catalog was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCatalog.Lock()
	mock.calls.Catalog = append(mock.calls.Catalog, callInfo)
	mock.lockCatalog.Unlock()
	return mock.CatalogFunc(ctx)
}

func (mock *solidFoodServiceMock) CatalogCalls() []struct {
	Ctx context.Context
} {
	mock.lockCatalog.RLock()
	calls := mock.calls.Catalog
	mock.lockCatalog.RUnlock()
	return calls
}

func (mock *solidFoodServiceMock) Rename(ctx context.Context, input solidfood.RenameInput) (solidfood.RewriteResult, error) {
	if mock.RenameFunc == nil {
		panic("solidFoodServiceMock.RenameFunc: method is nil but solidFoodService.Rename was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input solidfood.RenameInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, input)
}

func (mock *solidFoodServiceMock) RenameCalls() []struct {
	Ctx   context.Context
	Input solidfood.RenameInput
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}
