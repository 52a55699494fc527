package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/critter-backend/internal/adapter/memory"
	"github.com/heartmarshall/critter-backend/internal/adapter/postgres"
	customerrepo "github.com/heartmarshall/critter-backend/internal/adapter/postgres/customer"
	employeerepo "github.com/heartmarshall/critter-backend/internal/adapter/postgres/employee"
	petrepo "github.com/heartmarshall/critter-backend/internal/adapter/postgres/pet"
	schedulerepo "github.com/heartmarshall/critter-backend/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/critter-backend/internal/config"
	"github.com/heartmarshall/critter-backend/internal/domain"
	"github.com/heartmarshall/critter-backend/internal/service/customer"
	"github.com/heartmarshall/critter-backend/internal/service/employee"
	"github.com/heartmarshall/critter-backend/internal/service/pet"
	"github.com/heartmarshall/critter-backend/internal/service/schedule"
)

type customerStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Save(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	LinkPet(ctx context.Context, ownerID, petID int64) error
}

type petStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Pet, error)
	List(ctx context.Context) ([]*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error)
	Save(ctx context.Context, p *domain.Pet) (*domain.Pet, error)
}

type employeeStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
}

type scheduleStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListByPet(ctx context.Context, petID int64) ([]*domain.Schedule, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.Schedule, error)
	ListByPets(ctx context.Context, petIDs []int64) ([]*domain.Schedule, error)
	Save(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// stores is one backend's full set of repositories.
type stores struct {
	driver    string
	customers customerStore
	pets      petStore
	employees employeeStore
	schedules scheduleStore
	tx        txRunner
	ping      pinger
	close     func()
}

// Container holds the services wired onto the configured store.
type Container struct {
	Customers *customer.Service
	Pets      *pet.Service
	Employees *employee.Service
	Schedules *schedule.Service

	stores *stores
}

// NewContainer opens the store selected by cfg.Store and builds every service on top of it.
// The caller must call Close when done.
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return newContainer(log, st), nil
}

func newContainer(log *slog.Logger, st *stores) *Container {
	return &Container{
		Customers: customer.NewService(log, st.customers, st.pets, st.tx),
		Pets:      pet.NewService(log, st.pets, st.customers, st.tx),
		Employees: employee.NewService(log, st.employees, st.tx),
		Schedules: schedule.NewService(log, st.schedules, st.pets, st.employees, st.customers, st.tx),
		stores:    st,
	}
}

// StoreDriver returns the name of the active store backend.
func (c *Container) StoreDriver() string { return c.stores.driver }

// Ping checks the active store.
func (c *Container) Ping(ctx context.Context) error { return c.stores.ping.Ping(ctx) }

// Close releases the store's resources.
func (c *Container) Close() {
	if c.stores.close != nil {
		c.stores.close()
	}
}

func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	if !cfg.Store.UsesPostgres() {
		log.Info("using in-memory store")
		return memoryStores(memory.New()), nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	log.Info("connected to postgres",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)
	return postgresStores(pool), nil
}

func memoryStores(m *memory.Store) *stores {
	return &stores{
		driver:    config.DriverMemory,
		customers: m.Customers(),
		pets:      m.Pets(),
		employees: m.Employees(),
		schedules: m.Schedules(),
		tx:        m,
		ping:      m,
	}
}

func postgresStores(pool *pgxpool.Pool) *stores {
	return &stores{
		driver:    config.DriverPostgres,
		customers: customerrepo.New(pool),
		pets:      petrepo.New(pool),
		employees: employeerepo.New(pool),
		schedules: schedulerepo.New(pool),
		tx:        postgres.NewTxManager(pool),
		ping:      pool,
		close:     pool.Close,
	}
}
