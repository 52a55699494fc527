package customer

import (
	"strings"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SaveCustomerInput holds the parameters for creating or updating a customer.
// ID <= 0 creates a new customer. A blank Name keeps the stored one on update.
type SaveCustomerInput struct {
	ID          int64
	Name        string
	PhoneNumber string
	Notes       string
}

// Validate checks all fields and collects all errors.
func (i SaveCustomerInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" && i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(i.PhoneNumber) > 64 {
		errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SaveCustomerInput) fields() domain.CustomerFields {
	return domain.CustomerFields{
		Name:        strings.TrimSpace(i.Name),
		PhoneNumber: strings.TrimSpace(i.PhoneNumber),
		Notes:       i.Notes,
	}
}
