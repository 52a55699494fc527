package employee

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages employees, their availability and skill matching.
type Service struct {
	employees employeeRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Employee service.
func NewService(
	log *slog.Logger,
	employees employeeRepo,
	tx txManager,
) *Service {
	return &Service{
		employees: employees,
		tx:        tx,
		log:       log.With("service", "employee"),
	}
}

func employeeID(e *domain.Employee) int64 { return e.ID }
