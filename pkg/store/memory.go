package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory mission store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	missions map[string]Mission
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{missions: make(map[string]Mission)}
}

// Create persists a new mission.
func (s *MemoryStore) Create(_ context.Context, m Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.missions[m.ID]; ok {
		return ErrExists
	}
	s.missions[m.ID] = m
	return nil
}

// Get retrieves a mission by id.
func (s *MemoryStore) Get(_ context.Context, id string) (Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.missions[id]
	if !ok {
		return Mission{}, ErrNotFound
	}
	return m, nil
}

// List returns all missions ordered by creation time (ties broken by id so
// the order is stable).
func (s *MemoryStore) List(_ context.Context) ([]Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Mission, 0, len(s.missions))
	for _, m := range s.missions {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update replaces an existing mission.
func (s *MemoryStore) Update(_ context.Context, m Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.missions[m.ID]; !ok {
		return ErrNotFound
	}
	s.missions[m.ID] = m
	return nil
}

// Delete removes a mission.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.missions[id]; !ok {
		return ErrNotFound
	}
	delete(s.missions, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(_ context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
