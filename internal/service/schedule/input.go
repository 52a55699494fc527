package schedule

import (
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// SaveScheduleInput holds the parameters for creating or updating a schedule.
// PetIDs and EmployeeIDs are stored in the given order, repeats included.
type SaveScheduleInput struct {
	ID          int64
	Date        time.Time
	Activities  []domain.EmployeeSkill
	PetIDs      []int64
	EmployeeIDs []int64
}

// Validate requires every field to be populated, then checks activity tags.
func (i SaveScheduleInput) Validate() error {
	var missing []string
	if len(i.EmployeeIDs) == 0 {
		missing = append(missing, "employeeIds")
	}
	if len(i.PetIDs) == 0 {
		missing = append(missing, "petIds")
	}
	if i.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(i.Activities) == 0 {
		missing = append(missing, "activities")
	}
	if len(missing) > 0 {
		return domain.NewMissingInfoError(missing...)
	}

	var errs []domain.FieldError
	for _, a := range i.Activities {
		if !a.IsValid() {
			errs = append(errs, domain.FieldError{Field: "activities", Message: "unknown activity " + string(a)})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i SaveScheduleInput) fields() domain.ScheduleFields {
	return domain.ScheduleFields{
		Date:        i.Date,
		Activities:  i.Activities,
		PetIDs:      i.PetIDs,
		EmployeeIDs: i.EmployeeIDs,
	}
}
