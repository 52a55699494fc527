// Package customer implements the Customer repository using PostgreSQL.
// The owner-side pet list lives in customer_pets, ordered by position.
package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/critter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "name", "phone_number", "notes"}

type customerRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	PhoneNumber string `db:"phone_number"`
	Notes       string `db:"notes"`
}

type petLinkRow struct {
	CustomerID int64 `db:"customer_id"`
	PetID      int64 `db:"pet_id"`
}

// Appends the pet to the end of the owner's list unless some list already holds it.
const linkPetSQL = `
INSERT INTO customer_pets (customer_id, pet_id, position)
SELECT $1::bigint, $2::bigint, COALESCE(MAX(position), 0) + 1
FROM customer_pets
WHERE customer_id = $1::bigint
ON CONFLICT (pet_id) DO NOTHING`

// GetByID returns a customer with its pet list.
// Returns domain.ErrNotFound if the customer does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(columns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row customerRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "customer", id)
	}

	customers, err := withPets(ctx, q, []customerRow{row})
	if err != nil {
		return nil, err
	}
	return customers[0], nil
}

// List returns all customers ordered by id.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(columns...).
		From("customers").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []customerRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	return withPets(ctx, q, rows)
}

// Save updates the customer identified by c.ID, or inserts a new one when
// c.ID is not positive or no such row exists. The pet list is not written.
func (r *Repo) Save(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if c.ID > 0 {
		query, args, err := postgres.Builder.
			Update("customers").
			Set("name", c.Name).
			Set("phone_number", c.PhoneNumber).
			Set("notes", c.Notes).
			Where(sq.Eq{"id": c.ID}).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build query: %w", err)
		}

		var id int64
		err = q.QueryRow(ctx, query, args...).Scan(&id)
		if err == nil {
			return r.GetByID(ctx, id)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(err, "customer", c.ID)
		}
	}

	query, args, err := postgres.Builder.
		Insert("customers").
		Columns("name", "phone_number", "notes").
		Values(c.Name, c.PhoneNumber, c.Notes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "customer", c.ID)
	}

	return r.GetByID(ctx, id)
}

// LinkPet makes petID part of ownerID's pet list, removing it from any other list.
// Linking a pet the owner already lists is a no-op.
func (r *Repo) LinkPet(ctx context.Context, ownerID, petID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	unlink := postgres.Builder.
		Delete("customer_pets").
		Where(sq.Eq{"pet_id": petID}).
		Where(sq.NotEq{"customer_id": ownerID})
	if _, err := postgres.Exec(ctx, q, unlink); err != nil {
		return postgres.MapError(err, "customer", ownerID)
	}

	if _, err := q.Exec(ctx, linkPetSQL, ownerID, petID); err != nil {
		return postgres.MapError(err, "customer", ownerID)
	}

	return nil
}

func withPets(ctx context.Context, q postgres.Querier, rows []customerRow) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, len(rows))
	if len(rows) == 0 {
		return customers, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	query, args, err := postgres.Builder.
		Select("customer_id", "pet_id").
		From("customer_pets").
		Where(sq.Eq{"customer_id": ids}).
		OrderBy("customer_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var links []petLinkRow
	if err := pgxscan.Select(ctx, q, &links, query, args...); err != nil {
		return nil, fmt.Errorf("list customer pets: %w", err)
	}

	petsByOwner := make(map[int64][]int64, len(rows))
	for _, l := range links {
		petsByOwner[l.CustomerID] = append(petsByOwner[l.CustomerID], l.PetID)
	}

	for i, row := range rows {
		customers[i] = &domain.Customer{
			ID:          row.ID,
			Name:        row.Name,
			PhoneNumber: row.PhoneNumber,
			Notes:       row.Notes,
			PetIDs:      petsByOwner[row.ID],
		}
	}
	return customers, nil
}
