package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// ScheduleRepo serves schedules from a Store.
type ScheduleRepo struct {
	s *Store
}

// Schedules returns the schedule repository view of s.
func (s *Store) Schedules() *ScheduleRepo { return &ScheduleRepo{s: s} }

// GetByID returns domain.ErrNotFound if the schedule does not exist.
func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	st, done := r.s.read(ctx)
	defer done()

	s, ok := st.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	s = cloneSchedule(s)
	return &s, nil
}

// List returns all schedules ordered by id.
func (r *ScheduleRepo) List(ctx context.Context) ([]*domain.Schedule, error) {
	return r.filter(ctx, nil)
}

// ListByPet returns the schedules that include petID, ordered by id.
func (r *ScheduleRepo) ListByPet(ctx context.Context, petID int64) ([]*domain.Schedule, error) {
	return r.filter(ctx, func(s domain.Schedule) bool { return s.HasPet(petID) })
}

// ListByEmployee returns the schedules that include employeeID, ordered by id.
func (r *ScheduleRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error) {
	return r.filter(ctx, func(s domain.Schedule) bool { return s.HasEmployee(employeeID) })
}

// ListByPets returns the schedules that include any of petIDs, each once, ordered by id.
func (r *ScheduleRepo) ListByPets(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error) {
	return r.filter(ctx, func(s domain.Schedule) bool {
		return slices.ContainsFunc(petIDs, s.HasPet)
	})
}

// Save updates the schedule identified by s.ID or inserts a new one.
// Every referenced pet and employee must exist.
func (r *ScheduleRepo) Save(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	var saved domain.Schedule
	err := r.s.write(ctx, func(st *state) error {
		for _, id := range s.PetIDs {
			if _, ok := st.pets[id]; !ok {
				return fmt.Errorf("schedule %d: pet %d: %w", s.ID, id, domain.ErrNotFound)
			}
		}
		for _, id := range s.EmployeeIDs {
			if _, ok := st.employees[id]; !ok {
				return fmt.Errorf("schedule %d: employee %d: %w", s.ID, id, domain.ErrNotFound)
			}
		}

		saved = cloneSchedule(*s)
		if _, ok := st.schedules[s.ID]; !ok || s.ID <= 0 {
			saved.ID = st.nextID(domain.KindSchedule)
		}
		st.schedules[saved.ID] = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved = cloneSchedule(saved)
	return &saved, nil
}

func (r *ScheduleRepo) filter(ctx context.Context, keep func(domain.Schedule) bool) ([]*domain.Schedule, error) {
	st, done := r.s.read(ctx)
	defer done()

	return sortedByID(st.schedules, cloneSchedule, keep), nil
}
