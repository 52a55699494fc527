package employee

import (
	"strings"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SaveEmployeeInput holds the parameters for creating or updating an employee.
// A nil Skills or DaysAvailable leaves the stored value as is, and so does a
// blank Name when ID refers to a stored employee.
type SaveEmployeeInput struct {
	ID            int64
	Name          string
	Skills        []domain.EmployeeSkill
	DaysAvailable []domain.DayOfWeek
}

// Validate checks all fields and collects all errors.
func (i SaveEmployeeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" && i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	errs = append(errs, checkSkills("skills", i.Skills)...)
	errs = append(errs, checkDays("daysAvailable", i.DaysAvailable)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SaveEmployeeInput) fields() domain.EmployeeFields {
	return domain.EmployeeFields{
		Name:          strings.TrimSpace(i.Name),
		Skills:        i.Skills,
		DaysAvailable: i.DaysAvailable,
	}
}

// AvailabilityInput asks for employees that have all Skills and work on Date's weekday.
type AvailabilityInput struct {
	Date   time.Time
	Skills []domain.EmployeeSkill
}

// Validate rejects an incomplete request before any lookup.
func (i AvailabilityInput) Validate() error {
	var missing []string
	if i.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(i.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if len(missing) > 0 {
		return domain.NewMissingInfoError(missing...)
	}

	if errs := checkSkills("skills", i.Skills); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkSkills(field string, skills []domain.EmployeeSkill) []domain.FieldError {
	var errs []domain.FieldError
	for _, s := range skills {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown skill " + string(s)})
		}
	}
	return errs
}

func checkDays(field string, days []domain.DayOfWeek) []domain.FieldError {
	var errs []domain.FieldError
	for _, d := range days {
		if !d.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown day " + string(d)})
		}
	}
	return errs
}
