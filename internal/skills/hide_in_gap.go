package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// HideInGap turns the cat invisible while it keeps still and half visible
// while it moves, for a limited time
type HideInGap struct {
	base
	cfg HideInGapConfig

	hiding  bool
	elapsed float64
	last    geom.Vec3
	moving  bool
}

// NewHideInGap creates the skill and its ability
func NewHideInGap(cfg HideInGapConfig, deps Deps) *HideInGap {
	s := &HideInGap{
		base: base{name: NameHideInGap, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameHideInGap, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior; the owner must be able to fade
func (s *HideInGap) Validate() error {
	if err := s.base.Validate(); err != nil {
		return err
	}
	if _, ok := s.deps.Owner.(actor.Concealable); !ok {
		return apperr.FailedPreconditionf("%s owner %s cannot change opacity", s.name, s.deps.Owner.ID())
	}
	return nil
}

// CanActivate blocks re-hiding while hidden
func (s *HideInGap) CanActivate() bool { return !s.hiding }

// IsHiding reports whether the cat is hidden
func (s *HideInGap) IsHiding() bool { return s.hiding }

// IsMovingNow returns the last movement classification
func (s *HideInGap) IsMovingNow() bool { return s.moving }

// Remaining returns the seconds of hiding left
func (s *HideInGap) Remaining() float64 {
	if !s.hiding {
		return 0
	}
	return s.cfg.Duration - s.elapsed
}

// Activate implements ability.Behavior
func (s *HideInGap) Activate() {
	s.hiding = true
	s.elapsed = 0
	s.moving = false
	s.last = s.deps.Owner.Position()
	s.concealable().SetOpacity(HideOpacity(false))
	log.Printf("Skills: %s hiding for %.1fs", s.ownerID(), s.cfg.Duration)
}

// Tick reclassifies movement and updates opacity
func (s *HideInGap) Tick(dt float64) {
	if !s.hiding || dt <= 0 {
		return
	}

	cur := s.deps.Owner.Position()
	s.moving = IsMoving(cur, s.last, dt, s.cfg.MoveThreshold)
	s.last = cur
	s.concealable().SetOpacity(HideOpacity(s.moving))

	s.elapsed += dt
	if s.elapsed >= s.cfg.Duration {
		s.reveal()
	}
}

// CancelHide makes the cat fully visible immediately
func (s *HideInGap) CancelHide() {
	if s.hiding {
		s.reveal()
	}
}

// Cancel implements ability.Canceler
func (s *HideInGap) Cancel() { s.CancelHide() }

func (s *HideInGap) reveal() {
	s.hiding = false
	s.elapsed = 0
	s.moving = false
	s.concealable().SetOpacity(1)
}

func (s *HideInGap) concealable() actor.Concealable {
	return s.deps.Owner.(actor.Concealable)
}
