package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// IntimidatingBark slows the opponent when it is close to the dog
type IntimidatingBark struct {
	base
	cfg IntimidatingBarkConfig
}

// NewIntimidatingBark creates the skill and its ability
func NewIntimidatingBark(cfg IntimidatingBarkConfig, deps Deps) *IntimidatingBark {
	s := &IntimidatingBark{
		base: base{name: NameIntimidatingBark, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameIntimidatingBark, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *IntimidatingBark) Validate() error {
	return s.requireResolver()
}

// Activate implements ability.Behavior
func (s *IntimidatingBark) Activate() {
	owner := s.deps.Owner
	targets := s.deps.Resolver.ResolveArea(targeting.AreaQuery{
		Center:   owner.Position(),
		Radius:   s.cfg.Radius,
		IgnoreID: owner.ID(),
		Filter:   targeting.OpponentsOf(owner),
	})
	if len(targets) == 0 {
		log.Printf("Skills: %s had no one to scare", s.name)
		return
	}

	slow := effects.Slow(s.cfg.SlowMagnitude, s.cfg.SlowDuration, s.name)
	for _, target := range targets {
		if s.deliver(target, slow) {
			s.awardHit(target)
		}
	}
}
