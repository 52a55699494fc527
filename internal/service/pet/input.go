package pet

import (
	"strings"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SavePetInput holds the parameters for creating or updating a pet.
// ID <= 0 creates a new pet. OwnerID is mandatory.
type SavePetInput struct {
	ID        int64
	Type      domain.PetType
	Name      string
	OwnerID   int64
	BirthDate *time.Time
	Notes     string
}

// Validate reports absent required fields first, then malformed ones.
func (i SavePetInput) Validate() error {
	var missing []string
	if i.Type == "" {
		missing = append(missing, "type")
	}
	if i.OwnerID <= 0 {
		missing = append(missing, "ownerId")
	}
	if len(missing) > 0 {
		return domain.NewMissingInfoError(missing...)
	}

	var errs []domain.FieldError
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown pet type " + string(i.Type)})
	}
	if len(strings.TrimSpace(i.Name)) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SavePetInput) fields() domain.PetFields {
	return domain.PetFields{
		Type:      i.Type,
		Name:      strings.TrimSpace(i.Name),
		BirthDate: i.BirthDate,
		Notes:     i.Notes,
	}
}
