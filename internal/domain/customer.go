package domain

import "slices"

// Customer owns pets. PetIDs is the owner-side relation list, in link order.
type Customer struct {
	ID          int64
	Name        string
	PhoneNumber string
	Notes       string
	PetIDs      []int64
}

// CustomerFields are the mutable attributes a save request carries.
type CustomerFields struct {
	Name        string
	PhoneNumber string
	Notes       string
}

// Apply overwrites the mutable attributes of c. A blank Name keeps c.Name and
// the pet relation is left untouched.
func (f CustomerFields) Apply(c *Customer) {
	if f.Name != "" {
		c.Name = f.Name
	}
	c.PhoneNumber = f.PhoneNumber
	c.Notes = f.Notes
}

// HasPet reports whether petID is in the customer's pet list.
func (c *Customer) HasPet(petID int64) bool {
	return slices.Contains(c.PetIDs, petID)
}
