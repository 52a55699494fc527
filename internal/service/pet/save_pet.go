package pet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SavePet upserts a pet and links it to its owner. The pet row and the owner's
// pet list are written in one transaction. An unknown owner fails with
// domain.EntityNotFoundError for the customer.
func (s *Service) SavePet(ctx context.Context, input SavePetInput) (*domain.Pet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Pet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		owner, err := s.customers.GetByID(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError(domain.KindCustomer, input.OwnerID)
			}
			return fmt.Errorf("get owner: %w", err)
		}

		p := &domain.Pet{}
		if input.ID > 0 {
			existing, err := s.pets.GetByID(ctx, input.ID)
			switch {
			case err == nil:
				p = existing
			case errors.Is(err, domain.ErrNotFound):
			default:
				return fmt.Errorf("get pet: %w", err)
			}
		}

		input.fields().Apply(p)
		p.OwnerID = owner.ID

		saved, err = s.pets.Save(ctx, p)
		if err != nil {
			return fmt.Errorf("save pet: %w", err)
		}

		if !owner.HasPet(saved.ID) {
			if err := s.customers.LinkPet(ctx, owner.ID, saved.ID); err != nil {
				return fmt.Errorf("link pet to owner: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pet saved",
		slog.Int64("pet_id", saved.ID),
		slog.Int64("owner_id", saved.OwnerID),
	)

	return saved, nil
}
