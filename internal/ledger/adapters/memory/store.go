package memory

import (
	"context"
	"sync"

	"github.com/dejobratic/ledger/internal/ledger/domain"
)

// Store keeps the collection in process memory. Useful for local development
// and tests; nothing survives a restart.
type Store struct {
	mu  sync.RWMutex
	col domain.Collection
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{col: domain.Collection{}}
}

// Load returns a deep copy of the collection so callers can mutate freely.
func (s *Store) Load(_ context.Context) (domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.col.Clone(), nil
}

// Save replaces the collection wholesale.
func (s *Store) Save(_ context.Context, col domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.col = col.Clone()
	return nil
}
