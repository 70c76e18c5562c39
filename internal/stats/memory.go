package stats

import (
	"context"
	"sync"
)

// memoryStore keeps stats in a map; state is lost on restart.
type memoryStore struct {
	mu sync.RWMutex
	m  map[string]WinStats
}

// NewMemoryStore returns an in-process Store.
func NewMemoryStore() Store {
	return &memoryStore{m: make(map[string]WinStats)}
}

func (s *memoryStore) Load(_ context.Context, owner string) (WinStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[owner], nil
}

func (s *memoryStore) Save(_ context.Context, owner string, ws WinStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[owner] = ws
	return nil
}
