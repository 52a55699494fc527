// Package schedule implements the Schedule repository using PostgreSQL.
// Pet and employee lists are stored in schedule_pets / schedule_employees
// keyed by (schedule_id, position), so order and repeated ids survive a round trip.
package schedule

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/critter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Repo provides schedule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new schedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "date", "activities"}

type scheduleRow struct {
	ID         int64     `db:"id"`
	Date       time.Time `db:"date"`
	Activities []string  `db:"activities"`
}

type refRow struct {
	ScheduleID int64 `db:"schedule_id"`
	RefID      int64 `db:"ref_id"`
}

// join describes one of the two ordered id lists hanging off a schedule.
type join struct {
	table  string
	column string
}

var (
	petJoin      = join{table: "schedule_pets", column: "pet_id"}
	employeeJoin = join{table: "schedule_employees", column: "employee_id"}
)

// GetByID returns a schedule with its pet and employee lists.
// Returns domain.ErrNotFound if the schedule does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	schedules, err := r.list(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "schedule", id)
	}
	if len(schedules) == 0 {
		return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}
	return schedules[0], nil
}

// List returns all schedules ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.Schedule, error) {
	return r.list(ctx, nil)
}

// ListByPet returns the schedules that include petID, ordered by id.
func (r *Repo) ListByPet(ctx context.Context, petID int64) ([]*domain.Schedule, error) {
	return r.list(ctx, sq.Expr("id IN (SELECT schedule_id FROM schedule_pets WHERE pet_id = ?)", petID))
}

// ListByEmployee returns the schedules that include employeeID, ordered by id.
func (r *Repo) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error) {
	return r.list(ctx, sq.Expr("id IN (SELECT schedule_id FROM schedule_employees WHERE employee_id = ?)", employeeID))
}

// ListByPets returns the schedules that include any of petIDs, each once, ordered by id.
func (r *Repo) ListByPets(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error) {
	if len(petIDs) == 0 {
		return []*domain.Schedule{}, nil
	}
	return r.list(ctx, sq.Expr("id IN (SELECT schedule_id FROM schedule_pets WHERE pet_id = ANY(?))", petIDs))
}

// Save writes the schedule row and replaces both id lists. It issues several
// statements; callers run it inside a transaction.
func (r *Repo) Save(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	activities := postgres.TextArray(s.Activities)
	if activities == nil {
		activities = []string{}
	}

	var id int64
	if s.ID > 0 {
		query, args, err := postgres.Builder.
			Update("schedules").
			Set("date", s.Date).
			Set("activities", activities).
			Where(sq.Eq{"id": s.ID}).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build query: %w", err)
		}
		var ids []int64
		if err := pgxscan.Select(ctx, q, &ids, query, args...); err != nil {
			return nil, postgres.MapError(err, "schedule", s.ID)
		}
		if len(ids) == 1 {
			id = ids[0]
		}
	}

	if id == 0 {
		query, args, err := postgres.Builder.
			Insert("schedules").
			Columns("date", "activities").
			Values(s.Date, activities).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build query: %w", err)
		}
		if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			return nil, postgres.MapError(err, "schedule", s.ID)
		}
	}

	if err := replaceRefs(ctx, q, petJoin, id, s.PetIDs); err != nil {
		return nil, err
	}
	if err := replaceRefs(ctx, q, employeeJoin, id, s.EmployeeIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func replaceRefs(ctx context.Context, q postgres.Querier, j join, scheduleID int64, ids []int64) error {
	del := postgres.Builder.Delete(j.table).Where(sq.Eq{"schedule_id": scheduleID})
	if _, err := postgres.Exec(ctx, q, del); err != nil {
		return postgres.MapError(err, j.table, scheduleID)
	}
	if len(ids) == 0 {
		return nil
	}

	ins := postgres.Builder.Insert(j.table).Columns("schedule_id", "position", j.column)
	for i, id := range ids {
		ins = ins.Values(scheduleID, i, id)
	}
	if _, err := postgres.Exec(ctx, q, ins); err != nil {
		return postgres.MapError(err, j.table, scheduleID)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]*domain.Schedule, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.Select(columns...).From("schedules").OrderBy("id")
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []scheduleRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	schedules := make([]*domain.Schedule, len(rows))
	if len(rows) == 0 {
		return schedules, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	pets, err := loadRefs(ctx, q, petJoin, ids)
	if err != nil {
		return nil, err
	}
	employees, err := loadRefs(ctx, q, employeeJoin, ids)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		schedules[i] = &domain.Schedule{
			ID:          row.ID,
			Date:        row.Date,
			Activities:  postgres.FromTextArray[domain.EmployeeSkill](row.Activities),
			PetIDs:      pets[row.ID],
			EmployeeIDs: employees[row.ID],
		}
	}
	return schedules, nil
}

func loadRefs(ctx context.Context, q postgres.Querier, j join, scheduleIDs []int64) (map[int64][]int64, error) {
	query, args, err := postgres.Builder.
		Select("schedule_id", j.column+" AS ref_id").
		From(j.table).
		Where(sq.Eq{"schedule_id": scheduleIDs}).
		OrderBy("schedule_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var refs []refRow
	if err := pgxscan.Select(ctx, q, &refs, query, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", j.table, err)
	}

	out := make(map[int64][]int64, len(scheduleIDs))
	for _, ref := range refs {
		out[ref.ScheduleID] = append(out[ref.ScheduleID], ref.RefID)
	}
	return out, nil
}
