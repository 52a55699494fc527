package pet

import (
	"context"
	"sync"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

var _ petRepo = &petRepoMock{}

type petRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Pet, error)
	GetByIDsFunc    func(ctx context.Context, ids []int64) ([]*domain.Pet, error)
	ListFunc        func(ctx context.Context) ([]*domain.Pet, error)
	ListByOwnerFunc func(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
	SaveFunc        func(ctx context.Context, p *domain.Pet) (*domain.Pet, error)

	calls struct {
		GetByID     []struct {
			Ctx context.Context
			ID  int64
		}
		GetByIDs    []struct {
			Ctx context.Context
			IDs []int64
		}
		List        []struct {
			Ctx context.Context
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID int64
		}
		Save        []struct {
			Ctx context.Context
			P   *domain.Pet
		}
	}
	lockGetByID     sync.RWMutex
	lockGetByIDs    sync.RWMutex
	lockList        sync.RWMutex
	lockListByOwner sync.RWMutex
	lockSave        sync.RWMutex
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

func (mock *petRepoMock) List(ctx context.Context) ([]*domain.Pet, error) {
	if mock.ListFunc == nil {
		panic("petRepoMock.ListFunc: method is nil but petRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *petRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *petRepoMock) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	if mock.ListByOwnerFunc == nil {
		panic("petRepoMock.ListByOwnerFunc: method is nil but petRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *petRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID int64
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *petRepoMock) Save(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	if mock.SaveFunc == nil {
		panic("petRepoMock.SaveFunc: method is nil but petRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Pet
	}{Ctx: ctx, P: p}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, p)
}

func (mock *petRepoMock) SaveCalls() []struct {
	Ctx context.Context
	P   *domain.Pet
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Customer, error)
	LinkPetFunc func(ctx context.Context, ownerID int64, petID int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		LinkPet []struct {
			Ctx     context.Context
			OwnerID int64
			PetID   int64
		}
	}
	lockGetByID sync.RWMutex
	lockLinkPet sync.RWMutex
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

func (mock *customerRepoMock) LinkPet(ctx context.Context, ownerID int64, petID int64) error {
	if mock.LinkPetFunc == nil {
		panic("customerRepoMock.LinkPetFunc: method is nil but customerRepo.LinkPet was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		PetID   int64
	}{Ctx: ctx, OwnerID: ownerID, PetID: petID}
	mock.lockLinkPet.Lock()
	mock.calls.LinkPet = append(mock.calls.LinkPet, callInfo)
	mock.lockLinkPet.Unlock()
	return mock.LinkPetFunc(ctx, ownerID, petID)
}

func (mock *customerRepoMock) LinkPetCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	PetID   int64
} {
	mock.lockLinkPet.RLock()
	calls := mock.calls.LinkPet
	mock.lockLinkPet.RUnlock()
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
