package skills

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
)

// SlotCount is the number of skills every actor carries
const SlotCount = 3

// Factory builds a skill for an owner
type Factory func(deps Deps) Skill

// Registry maps skill names to factories
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry registers all nine skills with the given tunables
func NewDefaultRegistry(cfg Config) *Registry {
	r := NewRegistry()
	r.Register(NameCaptureNet, func(d Deps) Skill { return NewCaptureNet(cfg.CaptureNet, d) })
	r.Register(NameLeash, func(d Deps) Skill { return NewLeash(cfg.Leash, d) })
	r.Register(NameCalmingSpray, func(d Deps) Skill { return NewCalmingSpray(cfg.CalmingSpray, d) })
	r.Register(NameAgileJump, func(d Deps) Skill { return NewAgileJump(cfg.AgileJump, d) })
	r.Register(NameFurDistraction, func(d Deps) Skill { return NewFurDistraction(cfg.FurDistraction, d) })
	r.Register(NameHideInGap, func(d Deps) Skill { return NewHideInGap(cfg.HideInGap, d) })
	r.Register(NamePowerCharge, func(d Deps) Skill { return NewPowerCharge(cfg.PowerCharge, d) })
	r.Register(NameIntimidatingBark, func(d Deps) Skill { return NewIntimidatingBark(cfg.IntimidatingBark, d) })
	r.Register(NameStealTool, func(d Deps) Skill { return NewStealTool(cfg.StealTool, d) })
	return r
}

// Register adds a factory to the registry
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
}

// Get retrieves a factory by name
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	return factory, exists
}

// List returns all registered names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates a named skill
func (r *Registry) Build(name string, deps Deps) (Skill, error) {
	factory, ok := r.Get(name)
	if !ok {
		return nil, apperr.NotFoundf("skill %s is not registered", name)
	}
	return factory(deps), nil
}

// Loadout returns the skill names for a species, in slot order
func Loadout(species actor.Species) ([SlotCount]string, bool) {
	switch species {
	case actor.SpeciesGroomer:
		return [SlotCount]string{NameCaptureNet, NameLeash, NameCalmingSpray}, true
	case actor.SpeciesCat:
		return [SlotCount]string{NameAgileJump, NameFurDistraction, NameHideInGap}, true
	case actor.SpeciesDog:
		return [SlotCount]string{NamePowerCharge, NameIntimidatingBark, NameStealTool}, true
	default:
		return [SlotCount]string{}, false
	}
}

// BuildLoadout creates the three skills for the owner's species
func (r *Registry) BuildLoadout(deps Deps) ([SlotCount]Skill, error) {
	var out [SlotCount]Skill
	if deps.Owner == nil {
		return out, apperr.FailedPrecondition("loadout needs an owner")
	}

	names, ok := Loadout(deps.Owner.Species())
	if !ok {
		return out, apperr.InvalidArgumentf("no loadout for species %s", deps.Owner.Species())
	}

	for i, name := range names {
		skill, err := r.Build(name, deps)
		if err != nil {
			return out, apperr.Wrapf(err, "failed to build slot %d", i)
		}
		out[i] = skill
	}
	return out, nil
}
