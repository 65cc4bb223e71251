package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// CaptureNet throws a net along the groomer's facing and slows the first pet
// it catches
type CaptureNet struct {
	base
	cfg CaptureNetConfig
}

// NewCaptureNet creates the skill and its ability
func NewCaptureNet(cfg CaptureNetConfig, deps Deps) *CaptureNet {
	s := &CaptureNet{
		base: base{name: NameCaptureNet, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameCaptureNet, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *CaptureNet) Validate() error {
	return s.requireResolver()
}

// Activate implements ability.Behavior
func (s *CaptureNet) Activate() {
	owner := s.deps.Owner
	target, ok := s.deps.Resolver.ResolveRay(targeting.RayQuery{
		Origin:      owner.Position(),
		Direction:   owner.Forward(),
		MaxRange:    s.cfg.Range,
		SweepRadius: s.cfg.SweepRadius,
		IgnoreID:    owner.ID(),
		Filter:      targeting.All(targeting.Pets(), targeting.NotCaptured()),
	})
	if !ok {
		log.Printf("Skills: %s missed", s.name)
		return
	}

	s.deliver(target, effects.Slow(s.cfg.SlowMagnitude, s.cfg.SlowDuration, s.name))
}
