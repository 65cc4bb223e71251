package station

import (
	"sort"
	"sync"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// Registry holds the stations of one match and implements Locator
type Registry struct {
	mu       sync.RWMutex
	stations map[string]*Station
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{stations: make(map[string]*Station)}
}

// Add registers a station, replacing any with the same ID
func (r *Registry) Add(s *Station) error {
	if s == nil || s.ID == "" {
		return apperr.InvalidArgument("station ID is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stations[s.ID] = s
	return nil
}

// Get returns a station by ID
func (r *Registry) Get(id string) (*Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stations[id]
	if !ok {
		return nil, apperr.NotFoundf("station %s not found", id)
	}
	return s, nil
}

// All returns the stations ordered by ID
func (r *Registry) All() []*Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Station, 0, len(r.stations))
	for _, s := range r.stations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NearestInRange implements Locator. Ties are broken by ID.
func (r *Registry) NearestInRange(pos geom.Vec3, radius float64) (*Station, bool) {
	var (
		best     *Station
		bestDist float64
	)
	for _, s := range r.All() {
		d := geom.Distance(s.Position, pos)
		if d > radius {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, best != nil
}
