package scoring

import (
	"context"
	"sort"
	"sync"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
)

// MemoryStore is an in-process Store for tests and single-shot runs
type MemoryStore struct {
	mu           sync.RWMutex
	timeProvider TimeProvider
	matches      map[string]*MatchResult
	actorTotals  map[string]int
	speciesTotal map[string]float64
}

// NewMemoryStore creates an empty store
func NewMemoryStore(timeProvider TimeProvider) *MemoryStore {
	if timeProvider == nil {
		timeProvider = SystemTime()
	}
	return &MemoryStore{
		timeProvider: timeProvider,
		matches:      make(map[string]*MatchResult),
		actorTotals:  make(map[string]int),
		speciesTotal: make(map[string]float64),
	}
}

// Save implements Store
func (s *MemoryStore) Save(_ context.Context, result *MatchResult) error {
	if result == nil {
		return apperr.InvalidArgument("match result cannot be nil")
	}
	if result.ID == "" {
		return apperr.InvalidArgument("match result ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matches[result.ID]; exists {
		return apperr.Newf(apperr.CodeFailedPrecondition, "match %s already recorded", result.ID)
	}
	if result.RecordedAt.IsZero() {
		result.RecordedAt = s.timeProvider.Now()
	}

	stored := *result
	s.matches[result.ID] = &stored
	for id, points := range result.Scores {
		s.actorTotals[id] += points
	}
	for species, points := range result.SpeciesScores() {
		s.speciesTotal[species] += float64(points)
	}
	return nil
}

// Get implements Store
func (s *MemoryStore) Get(_ context.Context, id string) (*MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.matches[id]
	if !ok {
		return nil, apperr.NotFoundf("match %s not found", id)
	}
	copied := *r
	return &copied, nil
}

// ListMatches implements Store; results are ordered by ID
func (s *MemoryStore) ListMatches(_ context.Context) ([]*MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*MatchResult, 0, len(s.matches))
	for _, r := range s.matches {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ActorTotal implements Store
func (s *MemoryStore) ActorTotal(_ context.Context, actorID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actorTotals[actorID], nil
}

// Leaderboard implements Store; highest points first, ties by species name
func (s *MemoryStore) Leaderboard(_ context.Context, limit int) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaderboardEntry, 0, len(s.speciesTotal))
	for species, points := range s.speciesTotal {
		out = append(out, LeaderboardEntry{Species: species, Points: points})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Species < out[j].Species
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
