package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/customer"
	"github.com/heartmarshall/critter-backend/internal/service/employee"
	"github.com/heartmarshall/critter-backend/internal/service/pet"
	"github.com/heartmarshall/critter-backend/internal/service/schedule"
)

// Phase names in execution order.
const (
	PhaseCustomers = "customers"
	PhasePets      = "pets"
	PhaseEmployees = "employees"
	PhaseSchedules = "schedules"
)

// allPhases defines the canonical execution order. Later phases refer to
// records created by earlier ones.
var allPhases = []string{PhaseCustomers, PhasePets, PhaseEmployees, PhaseSchedules}

type customerSaver interface {
	SaveCustomer(ctx context.Context, input customer.SaveCustomerInput) (*domain.Customer, error)
}

type petSaver interface {
	SavePet(ctx context.Context, input pet.SavePetInput) (*domain.Pet, error)
}

type employeeSaver interface {
	SaveEmployee(ctx context.Context, input employee.SaveEmployeeInput) (*domain.Employee, error)
}

type scheduleSaver interface {
	SaveSchedule(ctx context.Context, input schedule.SaveScheduleInput) (*domain.Schedule, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline saves fixtures phase by phase. A record that fails is logged and
// counted; records that refer to it fail too.
type Pipeline struct {
	log       *slog.Logger
	customers customerSaver
	pets      petSaver
	employees employeeSaver
	schedules scheduleSaver
	cfg       Config

	results map[string]PhaseResult
	// ids[phase][i] is the id saved for fixture i, or 0 if it was not saved.
	ids map[string][]int64
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	customers customerSaver,
	pets petSaver,
	employees employeeSaver,
	schedules scheduleSaver,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		log:       log.With("component", "seeder"),
		customers: customers,
		pets:      pets,
		employees: employees,
		schedules: schedules,
		cfg:       cfg,
		results:   make(map[string]PhaseResult),
		ids:       make(map[string][]int64),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// IDs returns the ids assigned in phase, one per fixture, 0 for failures.
func (p *Pipeline) IDs(phase string) []int64 {
	return p.ids[phase]
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes every phase over fx. With StopOnError set, the first failed
// record aborts the run and its error is returned.
func (p *Pipeline) Run(ctx context.Context, fx *Fixtures) error {
	for _, phase := range allPhases {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case PhaseCustomers:
			result = p.runCustomers(ctx, fx.Customers)
		case PhasePets:
			result = p.runPets(ctx, fx.Pets)
		case PhaseEmployees:
			result = p.runEmployees(ctx, fx.Employees)
		case PhaseSchedules:
			result = p.runSchedules(ctx, fx.Schedules)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			if p.cfg.StopOnError {
				return fmt.Errorf("phase %s: %w", phase, result.Err)
			}
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

// record stores the outcome of fixture i and reports whether the phase must stop.
func (p *Pipeline) record(res *PhaseResult, phase string, i int, id int64, err error) bool {
	if err == nil {
		p.ids[phase][i] = id
		res.Inserted++
		return false
	}

	res.Errors++
	p.log.Warn("fixture rejected",
		slog.String("phase", phase),
		slog.Int("index", i),
		slog.String("error", err.Error()),
	)
	if p.cfg.StopOnError {
		res.Err = fmt.Errorf("fixture %d: %w", i, err)
		return true
	}
	return false
}

func (p *Pipeline) runCustomers(ctx context.Context, rows []CustomerFixture) PhaseResult {
	var res PhaseResult
	p.ids[PhaseCustomers] = make([]int64, len(rows))

	for i, row := range rows {
		input := customer.SaveCustomerInput{Name: row.Name, PhoneNumber: row.PhoneNumber, Notes: row.Notes}
		id, err := save(ctx, p.cfg.DryRun, input.Validate, func() (int64, error) {
			c, err := p.customers.SaveCustomer(ctx, input)
			if err != nil {
				return 0, err
			}
			return c.ID, nil
		})
		if p.record(&res, PhaseCustomers, i, id, err) {
			break
		}
	}
	return res
}

func (p *Pipeline) runPets(ctx context.Context, rows []PetFixture) PhaseResult {
	var res PhaseResult
	p.ids[PhasePets] = make([]int64, len(rows))

	for i, row := range rows {
		id, err := func() (int64, error) {
			owner, err := p.ref(PhaseCustomers, row.Owner)
			if err != nil {
				return 0, err
			}
			birth, err := parseDate(row.BirthDate)
			if err != nil {
				return 0, err
			}
			input := pet.SavePetInput{
				Type:      row.Type,
				Name:      row.Name,
				OwnerID:   owner,
				BirthDate: birth,
				Notes:     row.Notes,
			}
			return save(ctx, p.cfg.DryRun, input.Validate, func() (int64, error) {
				saved, err := p.pets.SavePet(ctx, input)
				if err != nil {
					return 0, err
				}
				return saved.ID, nil
			})
		}()
		if p.record(&res, PhasePets, i, id, err) {
			break
		}
	}
	return res
}

func (p *Pipeline) runEmployees(ctx context.Context, rows []EmployeeFixture) PhaseResult {
	var res PhaseResult
	p.ids[PhaseEmployees] = make([]int64, len(rows))

	for i, row := range rows {
		input := employee.SaveEmployeeInput{Name: row.Name, Skills: row.Skills, DaysAvailable: row.DaysAvailable}
		id, err := save(ctx, p.cfg.DryRun, input.Validate, func() (int64, error) {
			e, err := p.employees.SaveEmployee(ctx, input)
			if err != nil {
				return 0, err
			}
			return e.ID, nil
		})
		if p.record(&res, PhaseEmployees, i, id, err) {
			break
		}
	}
	return res
}

func (p *Pipeline) runSchedules(ctx context.Context, rows []ScheduleFixture) PhaseResult {
	var res PhaseResult
	p.ids[PhaseSchedules] = make([]int64, len(rows))

	for i, row := range rows {
		id, err := func() (int64, error) {
			petIDs, err := p.refs(PhasePets, row.Pets)
			if err != nil {
				return 0, err
			}
			employeeIDs, err := p.refs(PhaseEmployees, row.Employees)
			if err != nil {
				return 0, err
			}
			date, err := parseDate(row.Date)
			if err != nil {
				return 0, err
			}
			input := schedule.SaveScheduleInput{
				PetIDs:      petIDs,
				EmployeeIDs: employeeIDs,
				Activities:  row.Activities,
			}
			if date != nil {
				input.Date = *date
			}
			return save(ctx, p.cfg.DryRun, input.Validate, func() (int64, error) {
				s, err := p.schedules.SaveSchedule(ctx, input)
				if err != nil {
					return 0, err
				}
				return s.ID, nil
			})
		}()
		if p.record(&res, PhaseSchedules, i, id, err) {
			break
		}
	}
	return res
}

// ref resolves a fixture index from an earlier phase to its saved id.
// In a dry run nothing is saved, so only the bounds are checked.
func (p *Pipeline) ref(phase string, idx int) (int64, error) {
	ids := p.ids[phase]
	if idx < 0 || idx >= len(ids) {
		return 0, fmt.Errorf("%s index %d out of range (have %d)", phase, idx, len(ids))
	}
	if p.cfg.DryRun {
		return int64(idx + 1), nil
	}
	if ids[idx] == 0 {
		return 0, fmt.Errorf("%s index %d was not saved", phase, idx)
	}
	return ids[idx], nil
}

func (p *Pipeline) refs(phase string, idxs []int) ([]int64, error) {
	if idxs == nil {
		return nil, nil
	}
	out := make([]int64, 0, len(idxs))
	for _, idx := range idxs {
		id, err := p.ref(phase, idx)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// save validates the input and, unless dryRun is set, persists it.
func save(ctx context.Context, dryRun bool, validate func() error, persist func() (int64, error)) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validate(); err != nil {
		return 0, err
	}
	if dryRun {
		return 0, nil
	}
	return persist()
}
