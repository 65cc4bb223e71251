package skills

import (
	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// CalmingSpray stuns everyone around the groomer
type CalmingSpray struct {
	base
	cfg CalmingSprayConfig
}

// NewCalmingSpray creates the skill and its ability
func NewCalmingSpray(cfg CalmingSprayConfig, deps Deps) *CalmingSpray {
	s := &CalmingSpray{
		base: base{name: NameCalmingSpray, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameCalmingSpray, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *CalmingSpray) Validate() error {
	return s.requireResolver()
}

// Activate implements ability.Behavior
func (s *CalmingSpray) Activate() {
	owner := s.deps.Owner
	targets := s.deps.Resolver.ResolveArea(targeting.AreaQuery{
		Center:   owner.Position(),
		Radius:   s.cfg.Radius,
		IgnoreID: owner.ID(),
		Filter:   targeting.NotCaptured(),
	})

	stun := effects.Stun(s.cfg.StunDuration, s.name)
	for _, target := range targets {
		s.deliver(target, stun)
	}
}
