package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemorySelectionStore holds the selection in memory only. It backs tests
// and runs without a configured database, where stickiness is limited to
// the process lifetime.
type MemorySelectionStore struct {
	mu  sync.Mutex
	id  uuid.UUID
	set bool
}

func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{}
}

func (s *MemorySelectionStore) Load(context.Context) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.set, nil
}

func (s *MemorySelectionStore) Save(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	s.set = true
	return nil
}

func (s *MemorySelectionStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.Nil
	s.set = false
	return nil
}
