package skills

import (
	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

// JumpPhase is the stage of the cat's double jump
type JumpPhase int

const (
	JumpGrounded JumpPhase = iota
	JumpFirst
	JumpSecond
)

func (p JumpPhase) String() string {
	switch p {
	case JumpGrounded:
		return "grounded"
	case JumpFirst:
		return "first"
	case JumpSecond:
		return "second"
	default:
		return "unknown"
	}
}

// AgileJump makes two parabolic hops along the cat's facing. The second hop
// starts as soon as the first lands.
type AgileJump struct {
	base
	cfg AgileJumpConfig

	phase     JumpPhase
	elapsed   float64
	start     geom.Vec3
	direction geom.Vec3
	groundY   float64
	height    float64
}

// NewAgileJump creates the skill and its ability
func NewAgileJump(cfg AgileJumpConfig, deps Deps) *AgileJump {
	s := &AgileJump{
		base: base{name: NameAgileJump, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameAgileJump, cfg.Cooldown, s)
	return s
}

// CanActivate blocks a new jump while airborne
func (s *AgileJump) CanActivate() bool { return s.phase == JumpGrounded }

// IsJumping reports whether the cat is airborne
func (s *AgileJump) IsJumping() bool { return s.phase != JumpGrounded }

// Phase returns the current jump stage
func (s *AgileJump) Phase() JumpPhase { return s.phase }

// Height returns the current height above the take-off ground
func (s *AgileJump) Height() float64 { return s.height }

// Activate implements ability.Behavior
func (s *AgileJump) Activate() {
	owner := s.deps.Owner
	s.groundY = owner.Position().Y
	s.direction = owner.Forward().Flat().Normalize()
	s.begin(JumpFirst, owner.Position())
}

// Tick advances the current hop; landing the first hop starts the second
func (s *AgileJump) Tick(dt float64) {
	if s.phase == JumpGrounded || dt <= 0 {
		return
	}

	s.elapsed += dt
	t := geom.Clamp01(s.elapsed / s.cfg.JumpDuration)
	s.place(t)

	if t < 1 {
		return
	}

	landed := s.deps.Owner.Position()
	if s.phase == JumpFirst {
		s.begin(JumpSecond, landed)
		return
	}
	s.land()
}

// CancelJump drops the cat straight down where it is
func (s *AgileJump) CancelJump() {
	if s.phase == JumpGrounded {
		return
	}
	pos := s.deps.Owner.Position()
	pos.Y = s.groundY
	s.deps.Owner.SetPosition(pos)
	s.land()
}

// Cancel implements ability.Canceler
func (s *AgileJump) Cancel() { s.CancelJump() }

func (s *AgileJump) begin(phase JumpPhase, from geom.Vec3) {
	s.phase = phase
	s.elapsed = 0
	s.height = 0
	s.start = from
	s.start.Y = s.groundY
}

func (s *AgileJump) place(t float64) {
	h := s.cfg.FirstHeight
	if s.phase == JumpSecond {
		h = s.cfg.SecondHeight
	}
	s.height = JumpHeight(h, t)

	pos := s.start.Add(s.direction.Scale(s.cfg.JumpDistance * t))
	pos.Y = s.groundY + s.height
	s.deps.Owner.SetPosition(pos)
}

func (s *AgileJump) land() {
	s.phase = JumpGrounded
	s.elapsed = 0
	s.height = 0
}
