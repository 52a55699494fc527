package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// ListSchedules returns every schedule ordered by id.
func (s *Service) ListSchedules(ctx context.Context) ([]*domain.Schedule, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// SchedulesForPet returns the schedules that list petID.
func (s *Service) SchedulesForPet(ctx context.Context, petID int64) ([]*domain.Schedule, error) {
	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		return nil, notFound(err, domain.KindPet, petID)
	}

	schedules, err := s.schedules.ListByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("list schedules by pet: %w", err)
	}
	return schedules, nil
}

// SchedulesForEmployee returns the schedules that list employeeID.
func (s *Service) SchedulesForEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, notFound(err, domain.KindEmployee, employeeID)
	}

	schedules, err := s.schedules.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list schedules by employee: %w", err)
	}
	return schedules, nil
}

// SchedulesForCustomer returns the schedules that list any of the customer's pets,
// each schedule once.
func (s *Service) SchedulesForCustomer(ctx context.Context, customerID int64) ([]*domain.Schedule, error) {
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, notFound(err, domain.KindCustomer, customerID)
	}
	if len(c.PetIDs) == 0 {
		return []*domain.Schedule{}, nil
	}

	schedules, err := s.schedules.ListByPets(ctx, c.PetIDs)
	if err != nil {
		return nil, fmt.Errorf("list schedules by customer pets: %w", err)
	}
	return schedules, nil
}

func notFound(err error, kind domain.EntityKind, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewEntityNotFoundError(kind, id)
	}
	return fmt.Errorf("get %s: %w", kind.Label(), err)
}
