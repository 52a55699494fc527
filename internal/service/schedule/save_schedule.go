package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/resolve"
)

// SaveSchedule upserts a schedule. Every employee and pet id must exist; otherwise
// nothing is written and the domain.NotFoundError from resolution is returned as is.
// Employees are resolved first, so their error wins when both lists have unknown ids.
func (s *Service) SaveSchedule(ctx context.Context, input SaveScheduleInput) (*domain.Schedule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Schedule
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := resolve.Resolve(ctx, domain.KindEmployee, input.EmployeeIDs, s.employees.GetByIDs, employeeID); err != nil {
			return err
		}
		if _, err := resolve.Resolve(ctx, domain.KindPet, input.PetIDs, s.pets.GetByIDs, petID); err != nil {
			return err
		}

		sc := &domain.Schedule{}
		if input.ID > 0 {
			existing, err := s.schedules.GetByID(ctx, input.ID)
			switch {
			case err == nil:
				sc = existing
			case errors.Is(err, domain.ErrNotFound):
			default:
				return fmt.Errorf("get schedule: %w", err)
			}
		}

		input.fields().Apply(sc)

		var err error
		saved, err = s.schedules.Save(ctx, sc)
		if err != nil {
			return fmt.Errorf("save schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "schedule saved",
		slog.Int64("schedule_id", saved.ID),
		slog.String("date", saved.Date.Format("2006-01-02")),
		slog.Int("pets", len(saved.PetIDs)),
		slog.Int("employees", len(saved.EmployeeIDs)),
	)

	return saved, nil
}

func petID(p *domain.Pet) int64           { return p.ID }
func employeeID(e *domain.Employee) int64 { return e.ID }
