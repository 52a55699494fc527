package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// CustomerRepo serves customers from a Store.
type CustomerRepo struct {
	s *Store
}

// Customers returns the customer repository view of s.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// GetByID returns domain.ErrNotFound if the customer does not exist.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	st, done := r.s.read(ctx)
	defer done()

	c, ok := st.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	c = cloneCustomer(c)
	return &c, nil
}

// List returns all customers ordered by id.
func (r *CustomerRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	st, done := r.s.read(ctx)
	defer done()

	return sortedByID(st.customers, cloneCustomer, nil), nil
}

// Save updates the customer identified by c.ID or inserts a new one.
// The stored pet list is kept as is.
func (r *CustomerRepo) Save(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	var saved domain.Customer
	err := r.s.write(ctx, func(st *state) error {
		saved = cloneCustomer(*c)
		if existing, ok := st.customers[c.ID]; ok && c.ID > 0 {
			saved.PetIDs = existing.PetIDs
		} else {
			saved.ID = st.nextID(domain.KindCustomer)
			saved.PetIDs = nil
		}
		st.customers[saved.ID] = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	saved = cloneCustomer(saved)
	return &saved, nil
}

// LinkPet makes petID part of ownerID's pet list, removing it from any other list.
func (r *CustomerRepo) LinkPet(ctx context.Context, ownerID, petID int64) error {
	return r.s.write(ctx, func(st *state) error {
		owner, ok := st.customers[ownerID]
		if !ok {
			return fmt.Errorf("customer %d: %w", ownerID, domain.ErrNotFound)
		}
		if _, ok := st.pets[petID]; !ok {
			return fmt.Errorf("pet %d: %w", petID, domain.ErrNotFound)
		}

		for id, c := range st.customers {
			if id == ownerID || !c.HasPet(petID) {
				continue
			}
			c.PetIDs = slices.DeleteFunc(slices.Clone(c.PetIDs), func(p int64) bool { return p == petID })
			st.customers[id] = c
		}

		if !owner.HasPet(petID) {
			owner.PetIDs = append(slices.Clone(owner.PetIDs), petID)
			st.customers[ownerID] = owner
		}
		return nil
	})
}
