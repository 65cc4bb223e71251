package targeting

import (
	"sort"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

const (
	minSweepStep = 0.25
	maxRayPasses = 8
	rayNudge     = 1e-3
)

// Resolver turns ray and area queries into actors. It never mutates state.
type Resolver struct {
	space SpatialQuery
}

// NewResolver creates a resolver over the given spatial collaborator
func NewResolver(space SpatialQuery) *Resolver {
	if space == nil {
		panic("spatial query is required")
	}
	return &Resolver{space: space}
}

// ResolveRay returns the first actor blocking the ray. Only the caster is
// looked past; a blocker the filter rejects stops the ray as a miss. The
// sweep runs only when the ray touches nothing.
func (r *Resolver) ResolveRay(q RayQuery) (actor.Actor, bool) {
	direction := q.Direction.Normalize()
	if direction.IsZero() || q.MaxRange <= 0 {
		return nil, false
	}

	origin := q.Origin
	remaining := q.MaxRange
	for i := 0; i < maxRayPasses; i++ {
		hit, ok := r.space.Raycast(origin, direction, remaining)
		if !ok || hit.Actor == nil {
			break
		}
		if q.IgnoreID == "" || hit.Actor.ID() != q.IgnoreID {
			if accept(hit.Actor, q.IgnoreID, q.Filter) {
				return hit.Actor, true
			}
			return nil, false
		}

		// step through the caster's collider and keep going
		advance := hit.Distance + rayNudge
		remaining -= advance
		if remaining <= 0 {
			return nil, false
		}
		origin = origin.Add(direction.Scale(advance))
	}

	if q.SweepRadius <= 0 {
		return nil, false
	}
	return r.sweep(q, direction)
}

// sweep samples spheres along the path and returns the candidate closest to
// the sample point at the earliest step that finds one
func (r *Resolver) sweep(q RayQuery, direction geom.Vec3) (actor.Actor, bool) {
	step := q.SweepRadius
	if step < minSweepStep {
		step = minSweepStep
	}

	for travelled := 0.0; travelled <= q.MaxRange; travelled += step {
		point := q.Origin.Add(direction.Scale(travelled))
		candidates := r.ResolveArea(AreaQuery{
			Center:   point,
			Radius:   q.SweepRadius,
			IgnoreID: q.IgnoreID,
			Filter:   q.Filter,
		})
		if len(candidates) > 0 {
			return candidates[0], true
		}
	}
	return nil, false
}

// ResolveArea returns every distinct accepted actor in the sphere, nearest first
func (r *Resolver) ResolveArea(q AreaQuery) []actor.Actor {
	if q.Radius <= 0 {
		return nil
	}

	found := Dedupe(r.space.OverlapSphere(q.Center, q.Radius))
	out := make([]actor.Actor, 0, len(found))
	for _, a := range found {
		if accept(a, q.IgnoreID, q.Filter) {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di := geom.Distance(q.Center, out[i].Position())
		dj := geom.Distance(q.Center, out[j].Position())
		if di != dj {
			return di < dj
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

// Dedupe drops repeated actors by ID, keeping first-seen order
func Dedupe(actors []actor.Actor) []actor.Actor {
	seen := make(map[string]struct{}, len(actors))
	out := make([]actor.Actor, 0, len(actors))
	for _, a := range actors {
		if a == nil {
			continue
		}
		if _, dup := seen[a.ID()]; dup {
			continue
		}
		seen[a.ID()] = struct{}{}
		out = append(out, a)
	}
	return out
}
