// Package station models the grooming stations a captured pet is worked on,
// and the tool-theft side-car the dog uses to make grooming take longer.
package station

//go:generate mockgen -destination=mock/mock_locator.go -package=mockstation -source=station.go

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// DefaultBaseSteps is the number of grooming steps a station starts with
const DefaultBaseSteps = 3

// Locator finds the station an actor can reach
type Locator interface {
	NearestInRange(pos geom.Vec3, radius float64) (*Station, bool)
}

// ToolTheft accumulates the extra steps stolen tools add to a station.
// Steals are not capped; they sum until reset.
type ToolTheft struct {
	extraSteps int
	steals     int
}

// AddRequiredSteps adds n extra steps; non-positive n is ignored
func (t *ToolTheft) AddRequiredSteps(n int) {
	if n <= 0 {
		return
	}
	t.extraSteps += n
	t.steals++
}

// ExtraSteps returns the accumulated extra steps
func (t *ToolTheft) ExtraSteps() int { return t.extraSteps }

// Steals returns how many times tools were stolen
func (t *ToolTheft) Steals() int { return t.steals }

// Reset clears the side-car
func (t *ToolTheft) Reset() {
	t.extraSteps = 0
	t.steals = 0
}

// Station is a fixed grooming point in the world
type Station struct {
	ID        string
	Position  geom.Vec3
	BaseSteps int

	theft ToolTheft
}

// New creates a station; a non-positive base falls back to DefaultBaseSteps
func New(id string, pos geom.Vec3, baseSteps int) *Station {
	if baseSteps <= 0 {
		baseSteps = DefaultBaseSteps
	}
	return &Station{ID: id, Position: pos, BaseSteps: baseSteps}
}

// Theft exposes the tool-theft side-car
func (s *Station) Theft() *ToolTheft { return &s.theft }

// IsWithinRange reports whether pos is within radius of the station
func (s *Station) IsWithinRange(pos geom.Vec3, radius float64) bool {
	return geom.Distance(s.Position, pos) <= radius
}

// AddRequiredSteps records n stolen-tool steps on the side-car
func (s *Station) AddRequiredSteps(n int) {
	s.theft.AddRequiredSteps(n)
	log.Printf("Station: %s now requires %d steps (+%d)", s.ID, s.TotalSteps(), n)
}

// ExtraSteps returns the stolen-tool steps
func (s *Station) ExtraSteps() int { return s.theft.ExtraSteps() }

// TotalSteps returns base plus stolen-tool steps
func (s *Station) TotalSteps() int {
	return CalculateTotalGroomingSteps(s.BaseSteps, s.theft.ExtraSteps())
}

// ResetExtraSteps clears stolen-tool steps, e.g. after a pet is groomed
func (s *Station) ResetExtraSteps() {
	s.theft.Reset()
}

// CalculateTotalGroomingSteps is base + extra; negative extra counts as 0
func CalculateTotalGroomingSteps(base, extra int) int {
	if extra < 0 {
		extra = 0
	}
	return base + extra
}
