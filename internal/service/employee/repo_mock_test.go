package employee

import (
	"context"
	"sync"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id int64) (*domain.Employee, error)
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]*domain.Employee, error)
	ListFunc     func(ctx context.Context) ([]*domain.Employee, error)
	SaveFunc     func(ctx context.Context, e *domain.Employee) (*domain.Employee, error)

	calls struct {
		GetByID  []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
		List     []struct {
			Ctx context.Context
		}
		Save     []struct {
			Ctx context.Context
			E   *domain.Employee
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
	lockList     sync.RWMutex
	lockSave     sync.RWMutex
}

func (mock *employeeRepoMock) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if mock.GetByIDFunc == nil {
		panic("employeeRepoMock.GetByIDFunc: method is nil but employeeRepo.GetByID was just called")
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

func (mock *employeeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *employeeRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error) {
	if mock.GetByIDsFunc == nil {
		panic("employeeRepoMock.GetByIDsFunc: method is nil but employeeRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *employeeRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *employeeRepoMock) List(ctx context.Context) ([]*domain.Employee, error) {
	if mock.ListFunc == nil {
		panic("employeeRepoMock.ListFunc: method is nil but employeeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *employeeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *employeeRepoMock) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if mock.SaveFunc == nil {
		panic("employeeRepoMock.SaveFunc: method is nil but employeeRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Employee
	}{Ctx: ctx, E: e}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, e)
}

func (mock *employeeRepoMock) SaveCalls() []struct {
	Ctx context.Context
	E   *domain.Employee
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
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
