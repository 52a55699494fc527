package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// FindAvailable returns the employees that have every requested skill and work on
// the weekday of input.Date. Existing schedules are not considered.
func (s *Service) FindAvailable(ctx context.Context, input AvailabilityInput) ([]*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	all, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	day := domain.DayOf(input.Date)
	matched := make([]*domain.Employee, 0, len(all))
	for _, e := range all {
		if e.CanServe(input.Skills, day) {
			matched = append(matched, e)
		}
	}

	s.log.DebugContext(ctx, "availability matched",
		slog.String("day", day.String()),
		slog.Int("candidates", len(all)),
		slog.Int("matched", len(matched)),
	)

	return matched, nil
}
