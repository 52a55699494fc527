package customer

import (
	"context"
	"sync"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)
	ListFunc    func(ctx context.Context) ([]*domain.Customer, error)
	SaveFunc    func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List    []struct {
			Ctx context.Context
		}
		Save    []struct {
			Ctx context.Context
			C   *domain.Customer
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockSave    sync.RWMutex
}

func (mock *customerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but customerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *customerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerRepoMock) List(ctx context.Context) ([]*domain.Customer, error) {
	if mock.ListFunc == nil {
		panic("customerRepoMock.ListFunc: method is nil but customerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *customerRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerRepoMock) Save(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if mock.SaveFunc == nil {
		panic("customerRepoMock.SaveFunc: method is nil but customerRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{Ctx: ctx, C: c}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, c)
}

func (mock *customerRepoMock) SaveCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ petRepo = &petRepoMock{}

type petRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Pet, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *petRepoMock) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	if mock.GetByIDFunc == nil {
		panic("petRepoMock.GetByIDFunc: method is nil but petRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *petRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
