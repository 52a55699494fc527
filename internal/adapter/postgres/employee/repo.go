// Package employee implements the Employee repository using PostgreSQL.
// Skills and available days are stored as TEXT[]; a NULL days_available
// means availability has never been set.
package employee

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/critter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new employee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "name", "skills", "days_available"}

const returning = "RETURNING id, name, skills, days_available"

type employeeRow struct {
	ID            int64    `db:"id"`
	Name          string   `db:"name"`
	Skills        []string `db:"skills"`
	DaysAvailable []string `db:"days_available"`
}

func (r employeeRow) toDomain() *domain.Employee {
	skills := postgres.FromTextArray[domain.EmployeeSkill](r.Skills)
	if skills == nil {
		skills = []domain.EmployeeSkill{}
	}
	return &domain.Employee{
		ID:            r.ID,
		Name:          r.Name,
		Skills:        skills,
		DaysAvailable: postgres.FromTextArray[domain.DayOfWeek](r.DaysAvailable),
	}
}

// GetByID returns an employee by primary key.
// Returns domain.ErrNotFound if the employee does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var row employeeRow
	err := r.get(ctx, &row, postgres.Builder.Select(columns...).From("employees").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the employees that exist among ids, in id order.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error) {
	if len(ids) == 0 {
		return []*domain.Employee{}, nil
	}
	return r.list(ctx, postgres.Builder.Select(columns...).From("employees").Where(sq.Eq{"id": ids}).OrderBy("id"))
}

// List returns all employees ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.Employee, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From("employees").OrderBy("id"))
}

// Save updates the employee identified by e.ID, or inserts a new one when
// e.ID is not positive or no such row exists.
func (r *Repo) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	skills := postgres.TextArray(e.Skills)
	if skills == nil {
		skills = []string{}
	}
	days := postgres.TextArray(e.DaysAvailable)

	var row employeeRow

	if e.ID > 0 {
		err := r.get(ctx, &row, postgres.Builder.
			Update("employees").
			Set("name", e.Name).
			Set("skills", skills).
			Set("days_available", days).
			Where(sq.Eq{"id": e.ID}).
			Suffix(returning))
		if err == nil {
			return row.toDomain(), nil
		}
		if !pgxscan.NotFound(err) {
			return nil, postgres.MapError(err, "employee", e.ID)
		}
	}

	err := r.get(ctx, &row, postgres.Builder.
		Insert("employees").
		Columns("name", "skills", "days_available").
		Values(e.Name, skills, days).
		Suffix(returning))
	if err != nil {
		return nil, postgres.MapError(err, "employee", e.ID)
	}

	return row.toDomain(), nil
}

func (r *Repo) get(ctx context.Context, dst *employeeRow, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), dst, query, args...)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Employee, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []employeeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]*domain.Employee, len(rows))
	for i, row := range rows {
		employees[i] = row.toDomain()
	}
	return employees, nil
}
