package domain

import "time"

// Pet belongs to exactly one Customer once saved.
type Pet struct {
	ID        int64
	Type      PetType
	Name      string
	OwnerID   int64
	BirthDate *time.Time
	Notes     string
}

// PetFields are the mutable attributes a save request carries, owner excluded.
type PetFields struct {
	Type      PetType
	Name      string
	BirthDate *time.Time
	Notes     string
}

// Apply overwrites every mutable attribute of p except the owner.
func (f PetFields) Apply(p *Pet) {
	p.Type = f.Type
	p.Name = f.Name
	p.BirthDate = f.BirthDate
	p.Notes = f.Notes
}
