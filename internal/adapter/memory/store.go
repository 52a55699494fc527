// Package memory is an in-process entity store. It serves the same repository
// contracts as the PostgreSQL adapter and is used when no database is configured.
//
// Writers are serialized. A transaction works on a private copy of the whole
// state which replaces the committed state only when the callback succeeds,
// so readers never observe a half-applied save. Copying costs O(n) per
// transaction, which limits the store to small datasets and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/critter-backend/internal/domain"
)

// Store holds all entities addressed by id.
type Store struct {
	txMu      sync.Mutex   // serializes writers and transactions
	mu        sync.RWMutex // guards committed
	committed *state
}

type state struct {
	customers map[int64]domain.Customer
	pets      map[int64]domain.Pet
	employees map[int64]domain.Employee
	schedules map[int64]domain.Schedule
	lastID    map[domain.EntityKind]int64
}

type txCtxKey struct{}

type txState struct {
	store *Store
	st    *state
}

// New creates an empty store.
func New() *Store {
	return &Store{committed: newState()}
}

func newState() *state {
	return &state{
		customers: make(map[int64]domain.Customer),
		pets:      make(map[int64]domain.Pet),
		employees: make(map[int64]domain.Employee),
		schedules: make(map[int64]domain.Schedule),
		lastID:    make(map[domain.EntityKind]int64),
	}
}

func (st *state) clone() *state {
	out := newState()
	for id, c := range st.customers {
		out.customers[id] = cloneCustomer(c)
	}
	for id, p := range st.pets {
		out.pets[id] = clonePet(p)
	}
	for id, e := range st.employees {
		out.employees[id] = cloneEmployee(e)
	}
	for id, s := range st.schedules {
		out.schedules[id] = cloneSchedule(s)
	}
	for k, v := range st.lastID {
		out.lastID[k] = v
	}
	return out
}

func (st *state) nextID(kind domain.EntityKind) int64 {
	st.lastID[kind]++
	return st.lastID[kind]
}

// RunInTx executes fn against a private copy of the store and commits it if fn
// returns nil. A nested call joins the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	staged := s.committed.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txCtxKey{}, &txState{store: s, st: staged})); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = staged
	s.mu.Unlock()

	return nil
}

// Ping always succeeds; it lets the store serve readiness checks.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) inTx(ctx context.Context) *state {
	if tx, ok := ctx.Value(txCtxKey{}).(*txState); ok && tx.store == s {
		return tx.st
	}
	return nil
}

func (s *Store) read(ctx context.Context) (*state, func()) {
	if st := s.inTx(ctx); st != nil {
		return st, func() {}
	}
	s.mu.RLock()
	return s.committed, s.mu.RUnlock
}

func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if st := s.inTx(ctx); st != nil {
		return fn(st)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.committed)
}

func sortedByID[T any](m map[int64]T, clone func(T) T, keep func(T) bool) []*T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, cmp.Compare[int64])

	out := make([]*T, len(ids))
	for i, id := range ids {
		v := clone(m[id])
		out[i] = &v
	}
	return out
}

func cloneCustomer(c domain.Customer) domain.Customer {
	c.PetIDs = slices.Clone(c.PetIDs)
	return c
}

func clonePet(p domain.Pet) domain.Pet {
	if p.BirthDate != nil {
		d := *p.BirthDate
		p.BirthDate = &d
	}
	return p
}

func cloneEmployee(e domain.Employee) domain.Employee {
	e.Skills = slices.Clone(e.Skills)
	e.DaysAvailable = slices.Clone(e.DaysAvailable)
	return e
}

func cloneSchedule(s domain.Schedule) domain.Schedule {
	s.Activities = slices.Clone(s.Activities)
	s.PetIDs = slices.Clone(s.PetIDs)
	s.EmployeeIDs = slices.Clone(s.EmployeeIDs)
	return s
}
