package skills

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// Break-free chances for the leash
const (
	CatBreakFreeChance = 0.6
	DogBreakFreeChance = 0.4
)

// Hide-in-gap opacities
const (
	StationaryOpacity = 0.0
	MovingOpacity     = 0.5
)

// DetermineBreakFree reports whether a roll of r escapes a leash with the
// given chance
func DetermineBreakFree(chance, r float64) bool {
	return r < chance
}

// BreakFreeChance returns the species' default chance to slip the leash
func BreakFreeChance(species actor.Species) float64 {
	switch species {
	case actor.SpeciesCat:
		return CatBreakFreeChance
	case actor.SpeciesDog:
		return DogBreakFreeChance
	default:
		return 0
	}
}

// JumpHeight is the parabola 4h*t*(1-t) for t clamped to [0, 1]
func JumpHeight(h, t float64) float64 {
	t = geom.Clamp01(t)
	return 4 * h * t * (1 - t)
}

// IsMoving classifies a movement sample: speed = dist(cur, last)/dt > threshold
func IsMoving(cur, last geom.Vec3, dt, threshold float64) bool {
	if dt <= 0 {
		return false
	}
	return geom.Distance(cur, last)/dt > threshold
}

// HideOpacity is the hiding opacity for a movement classification
func HideOpacity(moving bool) float64 {
	if moving {
		return MovingOpacity
	}
	return StationaryOpacity
}
