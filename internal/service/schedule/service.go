package schedule

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

type scheduleRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListByPet(ctx context.Context, petID int64) ([]*domain.Schedule, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error)
	ListByPets(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error)
	Save(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

type petRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error)
}

type employeeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages schedules and the pets and employees they reference.
type Service struct {
	schedules scheduleRepo
	pets      petRepo
	employees employeeRepo
	customers customerRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Schedule service.
func NewService(
	log *slog.Logger,
	schedules scheduleRepo,
	pets petRepo,
	employees employeeRepo,
	customers customerRepo,
	tx txManager,
) *Service {
	return &Service{
		schedules: schedules,
		pets:      pets,
		employees: employees,
		customers: customers,
		tx:        tx,
		log:       log.With("service", "schedule"),
	}
}
