package customer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Save(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type petRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages customers and answers owner lookups.
type Service struct {
	customers customerRepo
	pets      petRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Customer service.
func NewService(
	log *slog.Logger,
	customers customerRepo,
	pets petRepo,
	tx txManager,
) *Service {
	return &Service{
		customers: customers,
		pets:      pets,
		tx:        tx,
		log:       log.With("service", "customer"),
	}
}
