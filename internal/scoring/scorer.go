// Package scoring tracks the points actors earn during a match and persists
// finished match results.
package scoring

//go:generate mockgen -destination=mock/mock_scorer.go -package=mockscoring -source=scorer.go

import (
	"log"
	"sort"
	"sync"
)

// SkillHitPoints is awarded when a pet's skill lands on its opponent
const SkillHitPoints = 30

// Scorer receives skill-hit notifications from abilities
type Scorer interface {
	AddSkillHitScore(actorID string)
}

// Board keeps the running totals of one match and implements Scorer
type Board struct {
	mu     sync.Mutex
	totals map[string]int
	hits   map[string]int
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		totals: make(map[string]int),
		hits:   make(map[string]int),
	}
}

// AddSkillHitScore implements Scorer
func (b *Board) AddSkillHitScore(actorID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hits[actorID]++
	b.totals[actorID] += SkillHitPoints
	log.Printf("Scoring: %s skill hit, total %d", actorID, b.totals[actorID])
}

// AddPoints adds points outside of skill hits, e.g. for a capture
func (b *Board) AddPoints(actorID string, points int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.totals[actorID] += points
}

// Total returns an actor's points
func (b *Board) Total(actorID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totals[actorID]
}

// Hits returns how many skill hits an actor landed
func (b *Board) Hits(actorID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[actorID]
}

// Totals returns a copy of all totals
func (b *Board) Totals() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]int, len(b.totals))
	for id, v := range b.totals {
		out[id] = v
	}
	return out
}

// HitCounts returns a copy of all skill-hit counts
func (b *Board) HitCounts() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]int, len(b.hits))
	for id, v := range b.hits {
		out[id] = v
	}
	return out
}

// ActorIDs returns every actor with points or hits, sorted
func (b *Board) ActorIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	seen := make(map[string]struct{}, len(b.totals))
	for id := range b.totals {
		seen[id] = struct{}{}
	}
	for id := range b.hits {
		seen[id] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
