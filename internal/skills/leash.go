package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// Leash hooks the first pet along the groomer's facing and reels it in.
// The pet gets one break-free roll when hooked.
type Leash struct {
	base
	cfg LeashConfig

	pulling  bool
	target   actor.Body
	start    geom.Vec3
	elapsed  float64
	duration float64
}

// NewLeash creates the skill and its ability
func NewLeash(cfg LeashConfig, deps Deps) *Leash {
	s := &Leash{
		base: base{name: NameLeash, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameLeash, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *Leash) Validate() error {
	if err := s.requireResolver(); err != nil {
		return err
	}
	if s.deps.Roller == nil {
		return apperr.FailedPreconditionf("%s has no roller", s.name)
	}
	return nil
}

// CanActivate blocks a second throw while reeling in
func (s *Leash) CanActivate() bool { return !s.pulling }

// IsPulling reports whether a pet is being reeled in
func (s *Leash) IsPulling() bool { return s.pulling }

// Target returns the pet being pulled, if any
func (s *Leash) Target() actor.Body { return s.target }

// PullDuration returns how long the current pull lasts
func (s *Leash) PullDuration() float64 { return s.duration }

// Activate implements ability.Behavior
func (s *Leash) Activate() {
	owner := s.deps.Owner
	hit, ok := s.deps.Resolver.ResolveRay(targeting.RayQuery{
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

	if DetermineBreakFree(s.breakFreeChance(hit.Species()), s.deps.Roller.Value()) {
		log.Printf("Skills: %s broke free of %s", hit.ID(), s.name)
		s.publish(events.EventTypeBreakFree, hit.ID(), string(hit.Species()))
		return
	}

	body, ok := hit.(actor.Body)
	if !ok {
		log.Printf("Skills: %s hooked %s but it cannot be moved", s.name, hit.ID())
		return
	}

	distance := geom.Distance(owner.Position(), body.Position())
	if distance <= s.cfg.StopDistance {
		return
	}

	s.pulling = true
	s.target = body
	s.start = body.Position()
	s.elapsed = 0
	s.duration = distance / s.cfg.PullSpeed
	log.Printf("Skills: %s pulling %s over %.2fs", s.name, body.ID(), s.duration)
}

// Tick moves the hooked pet toward the groomer
func (s *Leash) Tick(dt float64) {
	if !s.pulling || dt <= 0 {
		return
	}
	if reporter, ok := s.target.(actor.StateReporter); ok && reporter.State() == actor.StateCaptured {
		log.Printf("Skills: %s released %s, already captured", s.name, s.target.ID())
		s.stop()
		return
	}

	s.elapsed += dt
	t := geom.Clamp01(s.elapsed / s.duration)

	owner := s.deps.Owner.Position()
	goal := owner.Add(geom.Direction(owner, s.start).Scale(s.cfg.StopDistance))
	s.target.SetPosition(geom.Lerp(s.start, goal, t))

	if t >= 1 {
		s.stop()
	}
}

// CancelPull drops the pet where it is
func (s *Leash) CancelPull() {
	if s.pulling {
		s.stop()
	}
}

// Cancel implements ability.Canceler
func (s *Leash) Cancel() { s.CancelPull() }

func (s *Leash) stop() {
	s.pulling = false
	s.target = nil
	s.elapsed = 0
	s.duration = 0
}

func (s *Leash) breakFreeChance(species actor.Species) float64 {
	switch species {
	case actor.SpeciesCat:
		return s.cfg.CatBreakFreeChance
	case actor.SpeciesDog:
		return s.cfg.DogBreakFreeChance
	default:
		return BreakFreeChance(species)
	}
}
