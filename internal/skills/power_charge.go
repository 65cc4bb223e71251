package skills

import (
	"log"
	"math"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// PowerCharge dashes the dog forward. Hitting the opponent knocks it back
// and shakes loose any pet it is carrying.
type PowerCharge struct {
	base
	cfg PowerChargeConfig

	charging  bool
	direction geom.Vec3
	travelled float64

	lastKnown    geom.Vec3
	hasLastKnown bool
}

// NewPowerCharge creates the skill and its ability
func NewPowerCharge(cfg PowerChargeConfig, deps Deps) *PowerCharge {
	s := &PowerCharge{
		base: base{name: NamePowerCharge, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NamePowerCharge, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *PowerCharge) Validate() error {
	return s.requireResolver()
}

// CanActivate blocks a new dash until the current one ends
func (s *PowerCharge) CanActivate() bool { return !s.charging }

// IsCharging reports whether the dog is mid-dash
func (s *PowerCharge) IsCharging() bool { return s.charging }

// Travelled returns the distance covered by the current dash
func (s *PowerCharge) Travelled() float64 { return s.travelled }

// TrackOpponent implements OpponentTracker; the dash aims at the opponent
func (s *PowerCharge) TrackOpponent(opponent actor.Actor) {
	if opponent == nil {
		return
	}
	s.lastKnown = opponent.Position()
	s.hasLastKnown = true
}

// Activate implements ability.Behavior
func (s *PowerCharge) Activate() {
	owner := s.deps.Owner
	s.direction = owner.Forward().Flat().Normalize()
	if s.hasLastKnown {
		if d := geom.Direction(owner.Position(), s.lastKnown); !d.IsZero() {
			s.direction = d
		}
	}
	s.charging = true
	s.travelled = 0
	log.Printf("Skills: %s charging %.1f units", s.ownerID(), s.cfg.DashDistance)
}

// Tick moves the dog along the dash and checks for a collision
func (s *PowerCharge) Tick(dt float64) {
	if !s.charging || dt <= 0 {
		return
	}

	owner := s.deps.Owner
	step := math.Min(s.cfg.DashSpeed*dt, s.cfg.DashDistance-s.travelled)
	owner.SetPosition(owner.Position().Add(s.direction.Scale(step)))
	s.travelled += step

	hits := s.deps.Resolver.ResolveArea(targeting.AreaQuery{
		Center:   owner.Position(),
		Radius:   s.cfg.HitRadius,
		IgnoreID: owner.ID(),
		Filter:   targeting.OpponentsOf(owner),
	})
	if len(hits) > 0 {
		s.OnHit(hits[0])
		return
	}

	if s.travelled >= s.cfg.DashDistance {
		s.stop()
	}
}

// OnHit resolves a collision with target during a dash. It is a no-op when
// the dog is not charging, so a dash hits at most once.
func (s *PowerCharge) OnHit(target actor.Actor) bool {
	if !s.charging || target == nil {
		return false
	}
	s.stop()

	if k, ok := target.(actor.Knockbackable); ok {
		k.ApplyKnockback(s.direction, s.cfg.KnockbackForce)
	}

	if carrier, ok := target.(actor.CaptiveCarrier); ok && carrier.IsCarryingCaptive() {
		carrier.ReleaseCaptive()
		log.Printf("Skills: %s knocked the captive loose from %s", s.ownerID(), target.ID())
		s.publish(events.EventTypeCaptiveReleased, target.ID(), "")
	}

	s.awardHit(target)
	return true
}

// CancelCharge stops the dash where the dog is
func (s *PowerCharge) CancelCharge() {
	if s.charging {
		s.stop()
	}
}

// Cancel implements ability.Canceler
func (s *PowerCharge) Cancel() { s.CancelCharge() }

func (s *PowerCharge) stop() {
	s.charging = false
}
