package schedule

import (
	"context"
	"sync"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Schedule, error)
	ListFunc           func(ctx context.Context) ([]*domain.Schedule, error)
	ListByPetFunc      func(ctx context.Context, petID int64) ([]*domain.Schedule, error)
	ListByEmployeeFunc func(ctx context.Context, employeeID int64) ([]*domain.Schedule, error)
	ListByPetsFunc     func(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error)
	SaveFunc           func(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)

	calls struct {
		GetByID        []struct {
			Ctx context.Context
			ID  int64
		}
		List           []struct {
			Ctx context.Context
		}
		ListByPet      []struct {
			Ctx   context.Context
			PetID int64
		}
		ListByEmployee []struct {
			Ctx        context.Context
			EmployeeID int64
		}
		ListByPets     []struct {
			Ctx    context.Context
			PetIDs []int64
		}
		Save           []struct {
			Ctx context.Context
			S   *domain.Schedule
		}
	}
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockListByPet      sync.RWMutex
	lockListByEmployee sync.RWMutex
	lockListByPets     sync.RWMutex
	lockSave           sync.RWMutex
}

func (mock *scheduleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	if mock.GetByIDFunc == nil {
		panic("scheduleRepoMock.GetByIDFunc: method is nil but scheduleRepo.GetByID was just called")
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

func (mock *scheduleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) List(ctx context.Context) ([]*domain.Schedule, error) {
	if mock.ListFunc == nil {
		panic("scheduleRepoMock.ListFunc: method is nil but scheduleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *scheduleRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) ListByPet(ctx context.Context, petID int64) ([]*domain.Schedule, error) {
	if mock.ListByPetFunc == nil {
		panic("scheduleRepoMock.ListByPetFunc: method is nil but scheduleRepo.ListByPet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		PetID int64
	}{Ctx: ctx, PetID: petID}
	mock.lockListByPet.Lock()
	mock.calls.ListByPet = append(mock.calls.ListByPet, callInfo)
	mock.lockListByPet.Unlock()
	return mock.ListByPetFunc(ctx, petID)
}

func (mock *scheduleRepoMock) ListByPetCalls() []struct {
	Ctx   context.Context
	PetID int64
} {
	mock.lockListByPet.RLock()
	calls := mock.calls.ListByPet
	mock.lockListByPet.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error) {
	if mock.ListByEmployeeFunc == nil {
		panic("scheduleRepoMock.ListByEmployeeFunc: method is nil but scheduleRepo.ListByEmployee was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EmployeeID int64
	}{Ctx: ctx, EmployeeID: employeeID}
	mock.lockListByEmployee.Lock()
	mock.calls.ListByEmployee = append(mock.calls.ListByEmployee, callInfo)
	mock.lockListByEmployee.Unlock()
	return mock.ListByEmployeeFunc(ctx, employeeID)
}

func (mock *scheduleRepoMock) ListByEmployeeCalls() []struct {
	Ctx        context.Context
	EmployeeID int64
} {
	mock.lockListByEmployee.RLock()
	calls := mock.calls.ListByEmployee
	mock.lockListByEmployee.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) ListByPets(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error) {
	if mock.ListByPetsFunc == nil {
		panic("scheduleRepoMock.ListByPetsFunc: method is nil but scheduleRepo.ListByPets was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PetIDs []int64
	}{Ctx: ctx, PetIDs: petIDs}
	mock.lockListByPets.Lock()
	mock.calls.ListByPets = append(mock.calls.ListByPets, callInfo)
	mock.lockListByPets.Unlock()
	return mock.ListByPetsFunc(ctx, petIDs)
}

func (mock *scheduleRepoMock) ListByPetsCalls() []struct {
	Ctx    context.Context
	PetIDs []int64
} {
	mock.lockListByPets.RLock()
	calls := mock.calls.ListByPets
	mock.lockListByPets.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) Save(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	if mock.SaveFunc == nil {
		panic("scheduleRepoMock.SaveFunc: method is nil but scheduleRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Schedule
	}{Ctx: ctx, S: s}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, s)
}

func (mock *scheduleRepoMock) SaveCalls() []struct {
	Ctx context.Context
	S   *domain.Schedule
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ petRepo = &petRepoMock{}

type petRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id int64) (*domain.Pet, error)
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]*domain.Pet, error)

	calls struct {
		GetByID  []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
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

func (mock *petRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error) {
	if mock.GetByIDsFunc == nil {
		panic("petRepoMock.GetByIDsFunc: method is nil but petRepo.GetByIDs was just called")
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

func (mock *petRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id int64) (*domain.Employee, error)
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]*domain.Employee, error)

	calls struct {
		GetByID  []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
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

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
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
