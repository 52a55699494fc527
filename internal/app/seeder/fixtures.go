// Package seeder loads fixture data into the entity store through the service layer.
package seeder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// Fixtures is the seed file layout. Pets and schedules refer to earlier
// records by their position in the file, not by id.
type Fixtures struct {
	Customers []CustomerFixture `json:"customers"`
	Pets      []PetFixture      `json:"pets"`
	Employees []EmployeeFixture `json:"employees"`
	Schedules []ScheduleFixture `json:"schedules"`
}

type CustomerFixture struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Notes       string `json:"notes"`
}

type PetFixture struct {
	Type      domain.PetType `json:"type"`
	Name      string         `json:"name"`
	Owner     int            `json:"owner"`
	BirthDate string         `json:"birthDate"`
	Notes     string         `json:"notes"`
}

type EmployeeFixture struct {
	Name          string                 `json:"name"`
	Skills        []domain.EmployeeSkill `json:"skills"`
	DaysAvailable []domain.DayOfWeek     `json:"daysAvailable"`
}

type ScheduleFixture struct {
	Pets       []int                  `json:"pets"`
	Employees  []int                  `json:"employees"`
	Date       string                 `json:"date"`
	Activities []domain.EmployeeSkill `json:"activities"`
}

// LoadFixtures reads and decodes a fixtures file.
func LoadFixtures(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return DecodeFixtures(f)
}

// DecodeFixtures decodes fixtures from r. Unknown fields are rejected.
func DecodeFixtures(r io.Reader) (*Fixtures, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &fx, nil
}

// Empty reports whether fx has no records at all.
func (fx *Fixtures) Empty() bool {
	return len(fx.Customers)+len(fx.Pets)+len(fx.Employees)+len(fx.Schedules) == 0
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	return &t, nil
}
