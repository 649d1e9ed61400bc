// Package store keeps the loaded roster in memory for the session.
package store

import (
	"sync"

	"fantasy-logo-studio/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of teams in memory. The roster is
// only ever replaced wholesale (league load) or patched per team; teams are
// never deleted individually.
type MemoryStore struct {
	mu    sync.RWMutex
	teams map[string]domain.Team
	order []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams: make(map[string]domain.Team),
	}
}

// List returns a copy of the current teams in load order.
func (s *MemoryStore) List() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Team, 0, len(s.order))
	for _, id := range s.order {
		if t, ok := s.teams[id]; ok {
			result = append(result, t)
		}
	}
	return result
}

// Get retrieves a team by ID.
func (s *MemoryStore) Get(id string) (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// Replace swaps the existing roster with a new snapshot.
func (s *MemoryStore) Replace(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]domain.Team, len(teams))
	s.order = make([]string, 0, len(teams))
	for _, t := range teams {
		if _, exists := s.teams[t.ID]; !exists {
			s.order = append(s.order, t.ID)
		}
		s.teams[t.ID] = t
	}
}

// Patch applies a partial update to one team and returns the result.
// Returns false if the team is not present.
func (s *MemoryStore) Patch(id string, patch domain.TeamPatch) (domain.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return domain.Team{}, false
	}
	t = patch.Apply(t)
	s.teams[id] = t
	return t, true
}
