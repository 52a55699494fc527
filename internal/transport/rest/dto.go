package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// Date is a calendar day encoded as "YYYY-MM-DD". The zero Date encodes as null.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if s == nil || *s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, *s); err != nil {
			return fmt.Errorf("date %q: want YYYY-MM-DD", *s)
		}
	}
	d.Time = t
	return nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

func (d *Date) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

type customerDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Notes       string  `json:"notes"`
	PetIDs      []int64 `json:"petIds"`
}

type petDTO struct {
	ID        int64          `json:"id"`
	Type      domain.PetType `json:"type"`
	Name      string         `json:"name"`
	OwnerID   int64          `json:"ownerId"`
	BirthDate *Date          `json:"birthDate"`
	Notes     string         `json:"notes"`
}

type employeeDTO struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Skills        []domain.EmployeeSkill `json:"skills"`
	DaysAvailable []domain.DayOfWeek     `json:"daysAvailable"`
}

type availabilityRequest struct {
	Date   Date                   `json:"date"`
	Skills []domain.EmployeeSkill `json:"skills"`
}

type scheduleDTO struct {
	ID          int64                  `json:"id"`
	EmployeeIDs []int64                `json:"employeeIds"`
	PetIDs      []int64                `json:"petIds"`
	Date        Date                   `json:"date"`
	Activities  []domain.EmployeeSkill `json:"activities"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapAll[S, D any](in []*S, fn func(*S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func toCustomerDTO(c *domain.Customer) customerDTO {
	return customerDTO{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		PetIDs:      orEmpty(c.PetIDs),
	}
}

func toPetDTO(p *domain.Pet) petDTO {
	return petDTO{
		ID:        p.ID,
		Type:      p.Type,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		BirthDate: datePtr(p.BirthDate),
		Notes:     p.Notes,
	}
}

func toEmployeeDTO(e *domain.Employee) employeeDTO {
	return employeeDTO{
		ID:            e.ID,
		Name:          e.Name,
		Skills:        orEmpty(e.Skills),
		DaysAvailable: orEmpty(e.DaysAvailable),
	}
}

func toScheduleDTO(s *domain.Schedule) scheduleDTO {
	return scheduleDTO{
		ID:          s.ID,
		EmployeeIDs: orEmpty(s.EmployeeIDs),
		PetIDs:      orEmpty(s.PetIDs),
		Date:        Date{Time: s.Date},
		Activities:  orEmpty(s.Activities),
	}
}
