// Package store holds the in-memory state of the restaurant: orders,
// tables, menu, staff, inventory and reservations. A Store is an explicit
// dependency passed to handlers rather than process-global state, so tests
// construct and discard instances freely.
package store

import (
	"math/rand"
	"sync"
	"time"

	"crescendo/internal/models"
)

// Store holds all restaurant collections behind a single lock. Collections
// preserve insertion order and all derived views (status filters, low-stock
// lists) are recomputed on demand.
type Store struct {
	mu sync.RWMutex

	orders       []models.Order
	tables       []models.Table
	menuItems    []models.MenuItem
	staff        []models.Staff
	inventory    []models.InventoryItem
	reservations []models.Reservation

	now func() time.Time
	rng *rand.Rand
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, used by tests to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand overrides the random source used for seeding.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset clears every collection. Seed data must be re-applied afterwards.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.tables = nil
	s.menuItems = nil
	s.staff = nil
	s.inventory = nil
	s.reservations = nil
}
