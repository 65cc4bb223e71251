package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// FurDistraction throws a fur ball at where the opponent was last seen.
// A hit blocks the opponent's vision and scores a skill hit.
type FurDistraction struct {
	base
	cfg FurDistractionConfig

	lastKnown    geom.Vec3
	hasLastKnown bool
}

// NewFurDistraction creates the skill and its ability
func NewFurDistraction(cfg FurDistractionConfig, deps Deps) *FurDistraction {
	s := &FurDistraction{
		base: base{name: NameFurDistraction, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameFurDistraction, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *FurDistraction) Validate() error {
	return s.requireResolver()
}

// TrackOpponent implements OpponentTracker
func (s *FurDistraction) TrackOpponent(opponent actor.Actor) {
	if opponent == nil {
		return
	}
	s.SetLastKnownPosition(opponent.Position())
}

// SetLastKnownPosition sets where the fur ball will be aimed
func (s *FurDistraction) SetLastKnownPosition(pos geom.Vec3) {
	s.lastKnown = pos
	s.hasLastKnown = true
}

// LastKnownPosition returns the aim point, if one has been seen
func (s *FurDistraction) LastKnownPosition() (geom.Vec3, bool) {
	return s.lastKnown, s.hasLastKnown
}

// Activate implements ability.Behavior
func (s *FurDistraction) Activate() {
	if !s.hasLastKnown {
		log.Printf("Skills: %s has nothing to aim at", s.name)
		return
	}

	owner := s.deps.Owner
	target, ok := s.deps.Resolver.ResolveRay(targeting.RayQuery{
		Origin:      owner.Position(),
		Direction:   geom.Direction(owner.Position(), s.lastKnown),
		MaxRange:    s.cfg.Range,
		SweepRadius: s.cfg.HitRadius,
		IgnoreID:    owner.ID(),
		Filter:      targeting.All(targeting.OpponentsOf(owner), targeting.NotCaptured()),
	})
	if !ok {
		log.Printf("Skills: %s missed", s.name)
		return
	}

	if s.deliver(target, effects.VisionBlock(s.cfg.BlockDuration, s.name)) {
		s.awardHit(target)
	}
}
