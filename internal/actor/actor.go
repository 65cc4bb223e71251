// Package actor defines the narrow views abilities need of the actors they
// own or affect, plus Pawn, an in-memory actor used by the headless match.
package actor

import "github.com/KirkDiggler/pet-groomer/internal/geom"

// Species identifies what kind of actor this is
type Species string

const (
	SpeciesGroomer Species = "groomer"
	SpeciesCat     Species = "cat"
	SpeciesDog     Species = "dog"
)

// IsPet reports whether the species is hunted by the groomer
func (s Species) IsPet() bool {
	return s == SpeciesCat || s == SpeciesDog
}

// State is the coarse behaviour state an actor reports to decision engines
type State string

const (
	StateIdle      State = "idle"
	StateWandering State = "wandering"
	StateFleeing   State = "fleeing"
	StateChasing   State = "chasing"
	StateHiding    State = "hiding"
	StateCaptured  State = "captured"
)

// Actor is anything that can own abilities or be targeted by them
type Actor interface {
	ID() string
	Species() Species
	Position() geom.Vec3
}

// Body is an actor whose position abilities may drive (dash, jump, pull)
type Body interface {
	Actor
	Forward() geom.Vec3
	SetPosition(p geom.Vec3)
}

// Concealable actors can change their visibility
type Concealable interface {
	Opacity() float64
	SetOpacity(alpha float64)
}

// Knockbackable actors can be shoved by a collision
type Knockbackable interface {
	ApplyKnockback(direction geom.Vec3, force float64)
}

// CaptiveCarrier is implemented by the groomer, who may be holding a captured pet
type CaptiveCarrier interface {
	IsCarryingCaptive() bool
	ReleaseCaptive()
}

// StateReporter exposes the actor's behaviour state
type StateReporter interface {
	State() State
}

// IsOpponent reports whether two actors are on opposite sides of the chase
func IsOpponent(a, b Actor) bool {
	if a == nil || b == nil {
		return false
	}
	return (a.Species() == SpeciesGroomer) != (b.Species() == SpeciesGroomer)
}
