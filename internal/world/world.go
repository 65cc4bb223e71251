// Package world is the in-memory spatial index matches run on. It answers
// the ray and sphere queries targeting needs using sphere colliders.
package world

import (
	"math"
	"sort"
	"sync"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// Collider is a sphere attached to an actor, offset from its position
type Collider struct {
	Offset geom.Vec3
	Radius float64
}

type entry struct {
	actor     actor.Actor
	colliders []Collider
}

// World implements targeting.SpatialQuery over registered actors
type World struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

var _ targeting.SpatialQuery = (*World)(nil)

// New creates an empty world
func New() *World {
	return &World{entries: make(map[string]*entry)}
}

// Add registers an actor with one or more colliders. Adding an ID again
// replaces its colliders.
func (w *World) Add(a actor.Actor, colliders ...Collider) error {
	if a == nil || a.ID() == "" {
		return apperr.InvalidArgument("actor ID is required")
	}
	if len(colliders) == 0 {
		return apperr.InvalidArgumentf("actor %s needs at least one collider", a.ID())
	}
	for _, c := range colliders {
		if c.Radius <= 0 {
			return apperr.InvalidArgumentf("actor %s has a collider with radius %.2f", a.ID(), c.Radius)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries[a.ID()] = &entry{actor: a, colliders: colliders}
	return nil
}

// Remove unregisters an actor
func (w *World) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entries, id)
}

// Len returns the number of registered actors
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

// Raycast implements targeting.SpatialQuery. Colliders that contain the
// origin are skipped so a caster never hits itself.
func (w *World) Raycast(origin, direction geom.Vec3, maxRange float64) (targeting.Hit, bool) {
	dir := direction.Normalize()
	if dir.IsZero() || maxRange <= 0 {
		return targeting.Hit{}, false
	}

	var (
		best  targeting.Hit
		found bool
	)
	for _, e := range w.sorted() {
		for _, c := range e.colliders {
			center := e.actor.Position().Add(c.Offset)
			t, ok := raySphere(origin, dir, center, c.Radius)
			if !ok || t > maxRange {
				continue
			}
			if !found || t < best.Distance {
				best = targeting.Hit{
					Actor:    e.actor,
					Point:    origin.Add(dir.Scale(t)),
					Distance: t,
				}
				found = true
			}
		}
	}
	return best, found
}

// OverlapSphere implements targeting.SpatialQuery. An actor is listed once
// per touching collider.
func (w *World) OverlapSphere(center geom.Vec3, radius float64) []actor.Actor {
	if radius <= 0 {
		return nil
	}

	var out []actor.Actor
	for _, e := range w.sorted() {
		for _, c := range e.colliders {
			if geom.Distance(center, e.actor.Position().Add(c.Offset)) <= radius+c.Radius {
				out = append(out, e.actor)
			}
		}
	}
	return out
}

// sorted returns entries by ID so queries are deterministic
func (w *World) sorted() []*entry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*entry, 0, len(w.entries))
	for _, e := range w.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].actor.ID() < out[j].actor.ID() })
	return out
}

// raySphere returns the entry distance of a unit ray into a sphere. Rays
// starting inside the sphere do not count as hits.
func raySphere(origin, dir, center geom.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, false
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
