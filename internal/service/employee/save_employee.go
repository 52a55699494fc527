package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SaveEmployee upserts an employee. Skills and days present in the input replace the
// stored sets; absent ones are kept. A new employee needs a name.
func (s *Service) SaveEmployee(ctx context.Context, input SaveEmployeeInput) (*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Employee
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e := &domain.Employee{}
		if input.ID > 0 {
			existing, err := s.employees.GetByID(ctx, input.ID)
			switch {
			case err == nil:
				e = existing
			case errors.Is(err, domain.ErrNotFound):
			default:
				return fmt.Errorf("get employee: %w", err)
			}
		}

		if e.ID == 0 && input.fields().Name == "" {
			return &domain.ValidationError{Errors: []domain.FieldError{{Field: "name", Message: "required"}}}
		}
		input.fields().Apply(e)

		var err error
		saved, err = s.employees.Save(ctx, e)
		if err != nil {
			return fmt.Errorf("save employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "employee saved",
		slog.Int64("employee_id", saved.ID),
		slog.Int("skills", len(saved.Skills)),
		slog.Int("days", len(saved.DaysAvailable)),
	)

	return saved, nil
}

// SetAvailability replaces the employee's working days and leaves skills untouched.
// A nil days clears availability.
func (s *Service) SetAvailability(ctx context.Context, id int64, days []domain.DayOfWeek) (*domain.Employee, error) {
	if errs := checkDays("daysAvailable", days); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	var saved *domain.Employee
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.employees.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError(domain.KindEmployee, id)
			}
			return fmt.Errorf("get employee: %w", err)
		}

		if days == nil {
			days = []domain.DayOfWeek{}
		}
		e.DaysAvailable = domain.UniqueDays(days)

		saved, err = s.employees.Save(ctx, e)
		if err != nil {
			return fmt.Errorf("save employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "employee availability set",
		slog.Int64("employee_id", saved.ID),
		slog.Int("days", len(saved.DaysAvailable)),
	)

	return saved, nil
}
