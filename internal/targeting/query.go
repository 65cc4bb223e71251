package targeting

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// Filter accepts or rejects a candidate
type Filter func(a actor.Actor) bool

// RayQuery casts from Origin along Direction. When SweepRadius is positive and
// the ray misses, a sphere sweep along the same path is tried.
type RayQuery struct {
	Origin      geom.Vec3
	Direction   geom.Vec3
	MaxRange    float64
	SweepRadius float64
	// IgnoreID is usually the caster
	IgnoreID string
	Filter   Filter
}

// AreaQuery selects every distinct actor within Radius of Center
type AreaQuery struct {
	Center   geom.Vec3
	Radius   float64
	IgnoreID string
	Filter   Filter
}

func accept(a actor.Actor, ignoreID string, filter Filter) bool {
	if a == nil {
		return false
	}
	if ignoreID != "" && a.ID() == ignoreID {
		return false
	}
	if filter != nil && !filter(a) {
		return false
	}
	return true
}

// Pets accepts cats and dogs
func Pets() Filter {
	return func(a actor.Actor) bool {
		return a.Species().IsPet()
	}
}

// OpponentsOf accepts actors on the other side of the chase from self
func OpponentsOf(self actor.Actor) Filter {
	return func(a actor.Actor) bool {
		return actor.IsOpponent(self, a)
	}
}

// Only accepts a single actor by ID
func Only(id string) Filter {
	return func(a actor.Actor) bool {
		return a.ID() == id
	}
}

// NotCaptured rejects pets a groomer is carrying
func NotCaptured() Filter {
	return func(a actor.Actor) bool {
		r, ok := a.(actor.StateReporter)
		return !ok || r.State() != actor.StateCaptured
	}
}

// Visible rejects concealable actors fainter than minOpacity
func Visible(minOpacity float64) Filter {
	return func(a actor.Actor) bool {
		c, ok := a.(actor.Concealable)
		return !ok || c.Opacity() >= minOpacity
	}
}

// All accepts only when every non-nil filter accepts
func All(filters ...Filter) Filter {
	return func(a actor.Actor) bool {
		for _, f := range filters {
			if f != nil && !f(a) {
				return false
			}
		}
		return true
	}
}
