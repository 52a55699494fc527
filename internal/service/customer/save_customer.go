package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SaveCustomer updates the customer with input.ID, or creates one when the id is
// unset or unknown. The pet list is never changed here; pets attach through pet saves.
func (s *Service) SaveCustomer(ctx context.Context, input SaveCustomerInput) (*domain.Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Customer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c := &domain.Customer{}
		if input.ID > 0 {
			existing, err := s.customers.GetByID(ctx, input.ID)
			switch {
			case err == nil:
				c = existing
			case errors.Is(err, domain.ErrNotFound):
			default:
				return fmt.Errorf("get customer: %w", err)
			}
		}

		if c.ID == 0 && input.fields().Name == "" {
			return &domain.ValidationError{Errors: []domain.FieldError{{Field: "name", Message: "required"}}}
		}
		input.fields().Apply(c)

		var err error
		saved, err = s.customers.Save(ctx, c)
		if err != nil {
			return fmt.Errorf("save customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer saved",
		slog.Int64("customer_id", saved.ID),
		slog.Bool("created", saved.ID != input.ID),
	)

	return saved, nil
}
