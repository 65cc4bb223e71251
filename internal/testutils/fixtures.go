package testutils

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// CreateTestGroomer creates a groomer facing +Z
func CreateTestGroomer(id string, pos geom.Vec3) *actor.Pawn {
	return actor.NewPawn(actor.Config{
		ID:       id,
		Species:  actor.SpeciesGroomer,
		Position: pos,
		Forward:  geom.V(0, 0, 1),
		Speed:    5,
	})
}

// CreateTestCat creates a cat facing +Z
func CreateTestCat(id string, pos geom.Vec3) *actor.Pawn {
	return actor.NewPawn(actor.Config{
		ID:       id,
		Species:  actor.SpeciesCat,
		Position: pos,
		Forward:  geom.V(0, 0, 1),
		Speed:    6,
	})
}

// CreateTestDog creates a dog facing +Z
func CreateTestDog(id string, pos geom.Vec3) *actor.Pawn {
	return actor.NewPawn(actor.Config{
		ID:       id,
		Species:  actor.SpeciesDog,
		Position: pos,
		Forward:  geom.V(0, 0, 1),
		Speed:    5.5,
	})
}
