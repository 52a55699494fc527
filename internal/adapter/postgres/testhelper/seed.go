package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCustomer inserts a customer with no pets.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	c := domain.Customer{Name: "Customer " + uniqueSuffix(), PhoneNumber: "555-0100"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO customers (name, phone_number, notes) VALUES ($1, $2, '') RETURNING id`,
		c.Name, c.PhoneNumber,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedPet inserts a pet owned by ownerID and appends it to the owner's pet list.
func SeedPet(t *testing.T, pool *pgxpool.Pool, ownerID int64) domain.Pet {
	t.Helper()
	ctx := context.Background()

	p := domain.Pet{Type: domain.PetTypeCat, Name: "Pet " + uniqueSuffix(), OwnerID: ownerID}
	err := pool.QueryRow(ctx,
		`INSERT INTO pets (type, name, owner_id) VALUES ($1, $2, $3) RETURNING id`,
		p.Type.String(), p.Name, p.OwnerID,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPet insert pet: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO customer_pets (customer_id, pet_id, position)
		 SELECT $1::bigint, $2::bigint, COALESCE(MAX(position), 0) + 1 FROM customer_pets WHERE customer_id = $1::bigint`,
		ownerID, p.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPet link: %v", err)
	}
	return p
}

// SeedEmployee inserts an employee with the given skills and days.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool, skills []domain.EmployeeSkill, days []domain.DayOfWeek) domain.Employee {
	t.Helper()

	e := domain.Employee{Name: "Employee " + uniqueSuffix(), Skills: skills, DaysAvailable: days}

	skillArg := make([]string, len(skills))
	for i, s := range skills {
		skillArg[i] = s.String()
	}
	var dayArg []string
	if days != nil {
		dayArg = make([]string, len(days))
		for i, d := range days {
			dayArg[i] = d.String()
		}
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO employees (name, skills, days_available) VALUES ($1, $2, $3) RETURNING id`,
		e.Name, skillArg, dayArg,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}
	return e
}
