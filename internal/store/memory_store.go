package store

import (
	"sync"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest scoring run in
// memory: the scored players and their career summaries.
type MemoryStore struct {
	mu        sync.RWMutex
	players   map[string]domain.Player
	summaries map[string][]domain.CareerSummary
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:   make(map[string]domain.Player),
		summaries: make(map[string][]domain.CareerSummary),
	}
}

// ListPlayers returns a copy of the current scored players.
func (s *MemoryStore) ListPlayers() []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	return result
}

// GetPlayer retrieves a scored player by ID.
func (s *MemoryStore) GetPlayer(id string) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// Summaries retrieves the career summaries for a player.
func (s *MemoryStore) Summaries(playerID string) []domain.CareerSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CareerSummary, len(s.summaries[playerID]))
	copy(out, s.summaries[playerID])
	return out
}

// AllSummaries returns a copy of every stored career summary.
func (s *MemoryStore) AllSummaries() []domain.CareerSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CareerSummary
	for _, list := range s.summaries {
		out = append(out, list...)
	}
	return out
}

// SetResults replaces the stored run with a new snapshot.
func (s *MemoryStore) SetResults(players []domain.Player, summaries []domain.CareerSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]domain.Player, len(players))
	for _, p := range players {
		s.players[p.ID] = p
	}
	s.summaries = make(map[string][]domain.CareerSummary, len(players))
	for _, sum := range summaries {
		s.summaries[sum.PlayerID] = append(s.summaries[sum.PlayerID], sum)
	}
}
