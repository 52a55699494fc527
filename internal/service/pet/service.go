package pet

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

type petRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error)
	List(ctx context.Context) ([]*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
	Save(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	LinkPet(ctx context.Context, ownerID, petID int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages pets and keeps each owner's pet list in step with the pet's owner.
type Service struct {
	pets      petRepo
	customers customerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Pet service.
func NewService(
	log *slog.Logger,
	pets petRepo,
	customers customerRepo,
	tx txManager,
) *Service {
	return &Service{
		pets:      pets,
		customers: customers,
		tx:        tx,
		log:       log.With("service", "pet"),
	}
}

func petID(p *domain.Pet) int64 { return p.ID }
