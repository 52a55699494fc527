// Package pet implements the Pet repository using PostgreSQL.
package pet

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/critter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Repo provides pet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "type", "name", "owner_id", "birth_date", "notes"}

type petRow struct {
	ID        int64      `db:"id"`
	Type      string     `db:"type"`
	Name      string     `db:"name"`
	OwnerID   int64      `db:"owner_id"`
	BirthDate *time.Time `db:"birth_date"`
	Notes     string     `db:"notes"`
}

func (r petRow) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:        r.ID,
		Type:      domain.PetType(r.Type),
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		BirthDate: r.BirthDate,
		Notes:     r.Notes,
	}
}

// GetByID returns a pet by primary key.
// Returns domain.ErrNotFound if the pet does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	var row petRow
	err := r.get(ctx, &row, postgres.Builder.Select(columns...).From("pets").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "pet", id)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the pets that exist among ids, in id order.
// Missing ids are silently skipped; callers compare against the request.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error) {
	if len(ids) == 0 {
		return []*domain.Pet{}, nil
	}
	return r.list(ctx, postgres.Builder.Select(columns...).From("pets").Where(sq.Eq{"id": ids}).OrderBy("id"))
}

// List returns all pets ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.Pet, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From("pets").OrderBy("id"))
}

// ListByOwner returns the pets in the owner's pet list, in list order.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "p." + c
	}

	return r.list(ctx, postgres.Builder.
		Select(qualified...).
		From("pets p").
		Join("customer_pets cp ON cp.pet_id = p.id").
		Where(sq.Eq{"cp.customer_id": ownerID}).
		OrderBy("cp.position"))
}

// Save updates the pet identified by p.ID, or inserts a new one when
// p.ID is not positive or no such row exists.
func (r *Repo) Save(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	var row petRow

	if p.ID > 0 {
		err := r.get(ctx, &row, postgres.Builder.
			Update("pets").
			Set("type", p.Type.String()).
			Set("name", p.Name).
			Set("owner_id", p.OwnerID).
			Set("birth_date", p.BirthDate).
			Set("notes", p.Notes).
			Where(sq.Eq{"id": p.ID}).
			Suffix("RETURNING id, type, name, owner_id, birth_date, notes"))
		if err == nil {
			return row.toDomain(), nil
		}
		if !pgxscan.NotFound(err) {
			return nil, postgres.MapError(err, "pet", p.ID)
		}
	}

	err := r.get(ctx, &row, postgres.Builder.
		Insert("pets").
		Columns("type", "name", "owner_id", "birth_date", "notes").
		Values(p.Type.String(), p.Name, p.OwnerID, p.BirthDate, p.Notes).
		Suffix("RETURNING id, type, name, owner_id, birth_date, notes"))
	if err != nil {
		return nil, postgres.MapError(err, "pet", p.ID)
	}

	return row.toDomain(), nil
}

func (r *Repo) get(ctx context.Context, dst *petRow, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), dst, query, args...)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Pet, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []petRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	pets := make([]*domain.Pet, len(rows))
	for i, row := range rows {
		pets[i] = row.toDomain()
	}
	return pets, nil
}
