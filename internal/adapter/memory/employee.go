package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// EmployeeRepo serves employees from a Store.
type EmployeeRepo struct {
	s *Store
}

// Employees returns the employee repository view of s.
func (s *Store) Employees() *EmployeeRepo { return &EmployeeRepo{s: s} }

// GetByID returns domain.ErrNotFound if the employee does not exist.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	st, done := r.s.read(ctx)
	defer done()

	e, ok := st.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %d: %w", id, domain.ErrNotFound)
	}
	e = cloneEmployee(e)
	return &e, nil
}

// GetByIDs returns the employees that exist among ids, in id order.
func (r *EmployeeRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error) {
	st, done := r.s.read(ctx)
	defer done()

	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return sortedByID(st.employees, cloneEmployee, func(e domain.Employee) bool {
		_, ok := want[e.ID]
		return ok
	}), nil
}

// List returns all employees ordered by id.
func (r *EmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	st, done := r.s.read(ctx)
	defer done()

	return sortedByID(st.employees, cloneEmployee, nil), nil
}

// Save updates the employee identified by e.ID or inserts a new one.
func (r *EmployeeRepo) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	var saved domain.Employee
	err := r.s.write(ctx, func(st *state) error {
		saved = cloneEmployee(*e)
		if saved.Skills == nil {
			saved.Skills = []domain.EmployeeSkill{}
		}
		if _, ok := st.employees[e.ID]; !ok || e.ID <= 0 {
			saved.ID = st.nextID(domain.KindEmployee)
		}
		st.employees[saved.ID] = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved = cloneEmployee(saved)
	return &saved, nil
}
