package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/resolve"
)

// GetEmployee returns a single employee by id.
func (s *Service) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError(domain.KindEmployee, id)
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListEmployees returns every employee ordered by id.
func (s *Service) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// FindEmployees resolves ids to employees in request order.
func (s *Service) FindEmployees(ctx context.Context, ids []int64) ([]*domain.Employee, error) {
	return resolve.Resolve(ctx, domain.KindEmployee, ids, s.employees.GetByIDs, employeeID)
}
