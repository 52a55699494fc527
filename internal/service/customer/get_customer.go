package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// ListCustomers returns every customer ordered by id.
func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns a single customer by id.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError(domain.KindCustomer, id)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetOwnerByPet returns the customer that owns petID.
func (s *Service) GetOwnerByPet(ctx context.Context, petID int64) (*domain.Customer, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError(domain.KindPet, petID)
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return s.GetCustomer(ctx, p.OwnerID)
}
