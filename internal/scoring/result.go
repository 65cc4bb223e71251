package scoring

import (
	"sort"
	"time"
)

// MatchResult is the persisted summary of one finished match
type MatchResult struct {
	ID       string  `json:"id"`
	Seed     int64   `json:"seed"`
	Duration float64 `json:"duration"`
	// Species maps actor ID to species name
	Species  map[string]string `json:"species"`
	Scores   map[string]int    `json:"scores"`
	Hits     map[string]int    `json:"hits"`
	Captured []string          `json:"captured"`
	// ExtraSteps is how many grooming steps stolen tools added
	ExtraSteps int       `json:"extra_steps"`
	GroomerWon bool      `json:"groomer_won"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewMatchResult builds a result from a finished board
func NewMatchResult(id string, seed int64, duration float64, species map[string]string, board *Board) *MatchResult {
	r := &MatchResult{
		ID:       id,
		Seed:     seed,
		Duration: duration,
		Species:  species,
		Scores:   map[string]int{},
		Hits:     map[string]int{},
	}
	if board != nil {
		r.Scores = board.Totals()
		r.Hits = board.HitCounts()
	}
	return r
}

// SpeciesScores sums scores per species
func (r *MatchResult) SpeciesScores() map[string]int {
	out := make(map[string]int)
	for id, points := range r.Scores {
		species, ok := r.Species[id]
		if !ok {
			continue
		}
		out[species] += points
	}
	return out
}

// ScoredActorIDs returns the actors with scores, sorted
func (r *MatchResult) ScoredActorIDs() []string {
	ids := make([]string, 0, len(r.Scores))
	for id := range r.Scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LeaderboardEntry is one row of the species leaderboard
type LeaderboardEntry struct {
	Species string
	Points  float64
}
