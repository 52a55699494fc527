package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// PetRepo serves pets from a Store.
type PetRepo struct {
	s *Store
}

// Pets returns the pet repository view of s.
func (s *Store) Pets() *PetRepo { return &PetRepo{s: s} }

// GetByID returns domain.ErrNotFound if the pet does not exist.
func (r *PetRepo) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	st, done := r.s.read(ctx)
	defer done()

	p, ok := st.pets[id]
	if !ok {
		return nil, fmt.Errorf("pet %d: %w", id, domain.ErrNotFound)
	}
	p = clonePet(p)
	return &p, nil
}

// GetByIDs returns the pets that exist among ids, in id order.
func (r *PetRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error) {
	st, done := r.s.read(ctx)
	defer done()

	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return sortedByID(st.pets, clonePet, func(p domain.Pet) bool {
		_, ok := want[p.ID]
		return ok
	}), nil
}

// List returns all pets ordered by id.
func (r *PetRepo) List(ctx context.Context) ([]*domain.Pet, error) {
	st, done := r.s.read(ctx)
	defer done()

	return sortedByID(st.pets, clonePet, nil), nil
}

// ListByOwner returns the pets in the owner's pet list, in list order.
func (r *PetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	st, done := r.s.read(ctx)
	defer done()

	owner := st.customers[ownerID]
	out := make([]*domain.Pet, 0, len(owner.PetIDs))
	for _, id := range owner.PetIDs {
		if p, ok := st.pets[id]; ok {
			p = clonePet(p)
			out = append(out, &p)
		}
	}
	return out, nil
}

// Save updates the pet identified by p.ID or inserts a new one.
// The owner must exist.
func (r *PetRepo) Save(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	var saved domain.Pet
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.customers[p.OwnerID]; !ok {
			return fmt.Errorf("pet %d: owner %d: %w", p.ID, p.OwnerID, domain.ErrNotFound)
		}
		saved = clonePet(*p)
		if _, ok := st.pets[p.ID]; !ok || p.ID <= 0 {
			saved.ID = st.nextID(domain.KindPet)
		}
		st.pets[saved.ID] = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved = clonePet(saved)
	return &saved, nil
}
