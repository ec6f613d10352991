// Package memory holds the process-lifetime store backing the fleet
// registry. State lives in mutex-guarded maps and is discarded at exit;
// nothing persists across restarts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

// state keeps every record the registry owns, indexed by ID, together with
// the monotonic sequence counters used to issue customer/rental/bill IDs.
// Insertion order is tracked per record type so list operations are
// deterministic. A single RWMutex guards all maps.
type state struct {
	mu sync.RWMutex

	vehicles     map[string]*domain.Vehicle
	vehicleOrder []string

	customers     map[string]*domain.Customer
	customerOrder []string

	rentals     map[string]*domain.Rental
	rentalOrder []string

	bills     map[string]*domain.Bill
	billOrder []string

	customerSeq int
	rentalSeq   int
	billSeq     int
}

// rwLocker abstracts the state mutex so the repositories handed out by
// Mutate share the repository code without re-locking a lock the caller
// already holds.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noLock struct{}

func (noLock) Lock()    {}
func (noLock) Unlock()  {}
func (noLock) RLock()   {}
func (noLock) RUnlock() {}

// Store is a view over the shared state. The view returned by NewStore
// locks per repository call; Mutate hands fn a second view over the same
// state whose calls run under the already-held write lock.
type Store struct {
	st   *state
	held bool

	vehicles  *vehicleRepository
	customers *customerRepository
	rentals   *rentalRepository
	bills     *billRepository

	unlocked *Store
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	st := &state{
		vehicles:  make(map[string]*domain.Vehicle),
		customers: make(map[string]*domain.Customer),
		rentals:   make(map[string]*domain.Rental),
		bills:     make(map[string]*domain.Bill),
	}
	s := newView(st, &st.mu, false)
	s.unlocked = newView(st, noLock{}, true)
	s.unlocked.unlocked = s.unlocked
	return s
}

func newView(st *state, mu rwLocker, held bool) *Store {
	return &Store{
		st:        st,
		held:      held,
		vehicles:  &vehicleRepository{st: st, mu: mu},
		customers: &customerRepository{st: st, mu: mu},
		rentals:   &rentalRepository{st: st, mu: mu},
		bills:     &billRepository{st: st, mu: mu},
	}
}

func (s *Store) Vehicles() repository.VehicleRepository   { return s.vehicles }
func (s *Store) Customers() repository.CustomerRepository { return s.customers }
func (s *Store) Rentals() repository.RentalRepository     { return s.rentals }
func (s *Store) Bills() repository.BillRepository         { return s.bills }

// Mutate takes the write lock once and runs fn against the unlocked view,
// so everything fn reads and writes applies as one unit. Nested calls run
// directly under the lock already held.
func (s *Store) Mutate(ctx context.Context, fn func(repository.Store) error) error {
	if s.held {
		return fn(s)
	}
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return fn(s.unlocked)
}

// sequenceID formats sequence counters into the human-facing prefixed IDs
// the registry issues, e.g. CUST0001, R0001, B0001.
func sequenceID(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
