// Package memory provides an in-process slot store with the same contract
// as the SQLite-backed one. It is the default backend and the one tests
// use: nothing survives a restart.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Load returns a copy of the slot value, or nil when absent.
func (s *Store) Load(_ context.Context, slot string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.slots[slot]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// Save overwrites the slot with a copy of the value.
func (s *Store) Save(_ context.Context, slot string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = append([]byte(nil), value...)
	return nil
}

// Delete removes the slot. Missing slots are a no-op.
func (s *Store) Delete(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}
