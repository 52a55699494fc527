package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/resolve"
)

// GetPet returns a single pet by id.
func (s *Service) GetPet(ctx context.Context, id int64) (*domain.Pet, error) {
	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError(domain.KindPet, id)
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

// ListPets returns every pet ordered by id.
func (s *Service) ListPets(ctx context.Context) ([]*domain.Pet, error) {
	pets, err := s.pets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

// ListPetsByOwner returns the owner's pets in link order.
func (s *Service) ListPetsByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	if _, err := s.customers.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError(domain.KindCustomer, ownerID)
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}

	pets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pets by owner: %w", err)
	}
	return pets, nil
}

// FindPets resolves ids to pets in request order. Any unknown id fails the
// whole call with a domain.NotFoundError listing every missing id.
func (s *Service) FindPets(ctx context.Context, ids []int64) ([]*domain.Pet, error) {
	return resolve.Resolve(ctx, domain.KindPet, ids, s.pets.GetByIDs, petID)
}
