// Package targeting finds the actors an ability affects without tying ability
// logic to a physics engine. The world behind SpatialQuery is read-only here.
package targeting

//go:generate mockgen -destination=mock/mock_spatial.go -package=mocktargeting -source=spatial.go

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// Hit is the first thing a ray touched
type Hit struct {
	Actor    actor.Actor
	Point    geom.Vec3
	Distance float64
}

// SpatialQuery is the physics collaborator. OverlapSphere may return the same
// actor more than once when it has several colliders.
type SpatialQuery interface {
	// Raycast returns the first collider along direction within maxRange
	Raycast(origin, direction geom.Vec3, maxRange float64) (Hit, bool)
	// OverlapSphere returns every actor with a collider touching the sphere
	OverlapSphere(center geom.Vec3, radius float64) []actor.Actor
}
