package store

import (
	"context"
	"sync"

	"spendtrack/internal/core"
)

// MemStore keeps the collection in memory. It backs the "memory" backend
// and the test suites; nothing outlives the process.
type MemStore struct {
	mu    sync.Mutex
	items core.Collection
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(_ context.Context) (core.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(core.Collection{}, s.items...), nil
}

func (s *MemStore) Save(_ context.Context, col core.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(core.Collection{}, col...)
	return nil
}

func (s *MemStore) Close() error {
	return nil
}
