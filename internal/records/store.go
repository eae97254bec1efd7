// Package records implements the owned, mutable, persisted collections
// behind the dashboard: transactions, assets and goals. Each store keeps
// its collection in memory in insertion order and writes one full snapshot
// to its slot after every mutation. In-memory state is the source of truth
// for the session; a failed write is logged and never aborts a mutation.
package records

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Slot keys, one independent persistence slot per concern. The theme slot
// is owned by the dashboard service but named here with its siblings.
const (
	SlotTransactions = "financetracker_transactions"
	SlotAssets       = "financetracker_assets"
	SlotGoals        = "financetracker_goals"
	SlotTheme        = "financetracker_theme"
)

// Slots is the persistence contract a store saves through.
type Slots interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, value []byte) error
}

// Config wires one typed store.
type Config[T any] struct {
	Name     string // for logging
	Slot     string
	Seed     []T
	ID       func(T) string
	Validate func(T) error
	// OnAdd assigns the generated ID and any auto-derived fields.
	OnAdd func(record *T, id string, now time.Time)
	// OnUpdate touches auto-derived fields after a merge; may be nil.
	OnUpdate func(record *T, now time.Time)
	// Now defaults to time.Now.
	Now func() time.Time
}

// Store is a snapshot-persisted collection of one record type.
type Store[T any] struct {
	mu    sync.Mutex
	cfg   Config[T]
	slots Slots
	items []T
	rev   uint64
}

func NewStore[T any](slots Slots, cfg Config[T]) *Store[T] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store[T]{cfg: cfg, slots: slots}
}

// Init loads the persisted snapshot, seeding the built-in defaults when
// the slot is absent or unreadable. Unreadable is never fatal: the store
// logs, falls back to the seed and writes it out so the slot heals.
func (s *Store[T]) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.slots.Load(ctx, s.cfg.Slot)
	if err != nil || data == nil {
		if err != nil {
			slog.WarnContext(ctx, "Snapshot unreadable, seeding defaults",
				"store", s.cfg.Name,
				"error", err)
		}
		s.items = append([]T(nil), s.cfg.Seed...)
		s.persist(ctx)
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.WarnContext(ctx, "Snapshot malformed, seeding defaults",
			"store", s.cfg.Name,
			"error", err)
		s.items = append([]T(nil), s.cfg.Seed...)
		s.persist(ctx)
		return nil
	}

	s.items = items
	slog.InfoContext(ctx, "Snapshot loaded",
		"store", s.cfg.Name,
		"records", len(items))
	return nil
}

// Add validates the record, assigns a fresh ID plus auto-derived fields,
// appends it and persists the new snapshot. The stored record is returned.
func (s *Store[T]) Add(ctx context.Context, record T) (T, error) {
	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(record); err != nil {
			var zero T
			return zero, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.OnAdd(&record, uuid.NewString(), s.cfg.Now())
	s.items = append(s.items, record)
	s.rev++
	s.persist(ctx)
	return record, nil
}

// Update applies mutate to the record with the given ID and persists.
// A missing ID is a silent no-op reported as false, never an error.
func (s *Store[T]) Update(ctx context.Context, id string, mutate func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.cfg.ID(s.items[i]) != id {
			continue
		}
		mutate(&s.items[i])
		if s.cfg.OnUpdate != nil {
			s.cfg.OnUpdate(&s.items[i], s.cfg.Now())
		}
		s.rev++
		s.persist(ctx)
		return true
	}
	return false
}

// Remove deletes the record with the given ID and persists. A missing ID
// is a silent no-op reported as false.
func (s *Store[T]) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.cfg.ID(s.items[i]) != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.rev++
		s.persist(ctx)
		return true
	}
	return false
}

// List returns a copy of the collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Revision increases on every mutation. Derived-view caches key on it.
func (s *Store[T]) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// persist writes the full snapshot. Called with the lock held. Failures
// are logged and swallowed: the in-memory collection stays authoritative.
func (s *Store[T]) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		slog.ErrorContext(ctx, "Snapshot encode failed",
			"store", s.cfg.Name,
			"error", err)
		return
	}
	if err := s.slots.Save(ctx, s.cfg.Slot, data); err != nil {
		slog.ErrorContext(ctx, "Snapshot save failed",
			"store", s.cfg.Name,
			"error", err)
	}
}
