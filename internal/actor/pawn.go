package actor

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
)

const (
	defaultRadius    = 0.5
	defaultSpeed     = 4.0
	knockbackDamping = 6.0
	releaseOffset    = 1.5
)

// Config holds the spawn parameters for a Pawn
type Config struct {
	ID       string
	Species  Species
	Position geom.Vec3
	Forward  geom.Vec3
	Radius   float64
	Speed    float64
}

// Pawn is the in-memory actor used by matches and tests. It implements Body,
// Concealable, Knockbackable, CaptiveCarrier, StateReporter and
// effects.Receiver.
type Pawn struct {
	id       string
	species  Species
	position geom.Vec3
	forward  geom.Vec3
	radius   float64
	speed    float64
	state    State
	opacity  float64

	effects   *effects.Tracker
	knockback geom.Vec3

	captive    *Pawn
	capturedBy *Pawn
}

// NewPawn creates a pawn; zero radius/speed/forward fall back to defaults
func NewPawn(cfg Config) *Pawn {
	if cfg.ID == "" {
		panic("pawn ID is required")
	}

	p := &Pawn{
		id:       cfg.ID,
		species:  cfg.Species,
		position: cfg.Position,
		forward:  cfg.Forward.Flat().Normalize(),
		radius:   cfg.Radius,
		speed:    cfg.Speed,
		state:    StateIdle,
		opacity:  1,
		effects:  effects.NewTracker(),
	}
	if p.forward.IsZero() {
		p.forward = geom.V(0, 0, 1)
	}
	if p.radius <= 0 {
		p.radius = defaultRadius
	}
	if p.speed <= 0 {
		p.speed = defaultSpeed
	}

	return p
}

func (p *Pawn) ID() string              { return p.id }
func (p *Pawn) Species() Species        { return p.species }
func (p *Pawn) Position() geom.Vec3     { return p.position }
func (p *Pawn) SetPosition(v geom.Vec3) { p.position = v }
func (p *Pawn) Forward() geom.Vec3      { return p.forward }
func (p *Pawn) Radius() float64         { return p.radius }
func (p *Pawn) State() State            { return p.state }
func (p *Pawn) SetState(s State)        { p.state = s }
func (p *Pawn) Opacity() float64        { return p.opacity }
func (p *Pawn) Effects() *effects.Tracker {
	return p.effects
}

// SetOpacity implements Concealable; alpha is clamped to [0, 1]
func (p *Pawn) SetOpacity(alpha float64) {
	p.opacity = geom.Clamp01(alpha)
}

// Face turns the pawn toward a direction on the ground plane
func (p *Pawn) Face(direction geom.Vec3) {
	flat := direction.Flat().Normalize()
	if !flat.IsZero() {
		p.forward = flat
	}
}

// ApplyEffect implements effects.Receiver
func (p *Pawn) ApplyEffect(d effects.Descriptor) {
	if p.capturedBy != nil {
		return
	}
	p.effects.ApplyEffect(d)
}

// ApplyKnockback implements Knockbackable
func (p *Pawn) ApplyKnockback(direction geom.Vec3, force float64) {
	p.knockback = p.knockback.Add(direction.Flat().Normalize().Scale(force))
}

// EffectiveSpeed is the base speed after status effects
func (p *Pawn) EffectiveSpeed() float64 {
	if p.capturedBy != nil {
		return 0
	}
	return p.speed * p.effects.SpeedMultiplier()
}

// Move walks along direction for dt seconds at the effective speed
func (p *Pawn) Move(direction geom.Vec3, dt float64) {
	flat := direction.Flat().Normalize()
	if flat.IsZero() || dt <= 0 {
		return
	}
	p.forward = flat
	p.position = p.position.Add(flat.Scale(p.EffectiveSpeed() * dt))
}

// Tick advances effect timers, knockback and captive carrying
func (p *Pawn) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	p.effects.Tick(dt)

	if !p.knockback.IsZero() {
		p.position = p.position.Add(p.knockback.Scale(dt))
		damp := 1 - knockbackDamping*dt
		if damp < 0 {
			damp = 0
		}
		p.knockback = p.knockback.Scale(damp)
		if p.knockback.Len() < 0.01 {
			p.knockback = geom.Zero
		}
	}

	if p.captive != nil {
		p.captive.position = p.position
	}
}

// Capture puts a pet in the groomer's hands
func (p *Pawn) Capture(pet *Pawn) bool {
	if p.species != SpeciesGroomer || pet == nil || !pet.species.IsPet() {
		return false
	}
	if p.captive != nil || pet.capturedBy != nil {
		return false
	}

	p.captive = pet
	pet.capturedBy = p
	pet.state = StateCaptured
	pet.effects.Clear()
	pet.SetOpacity(1)
	log.Printf("Pawn: %s captured %s", p.id, pet.id)
	return true
}

// Captive returns the carried pet, if any
func (p *Pawn) Captive() *Pawn {
	return p.captive
}

// IsCaptured reports whether a groomer is holding this pawn
func (p *Pawn) IsCaptured() bool {
	return p.capturedBy != nil
}

// IsCarryingCaptive implements CaptiveCarrier
func (p *Pawn) IsCarryingCaptive() bool {
	return p.captive != nil
}

// ReleaseCaptive implements CaptiveCarrier. The freed pet lands behind the
// groomer and starts fleeing.
func (p *Pawn) ReleaseCaptive() {
	pet := p.captive
	if pet == nil {
		return
	}

	p.captive = nil
	pet.capturedBy = nil
	pet.state = StateFleeing
	pet.position = p.position.Sub(p.forward.Scale(releaseOffset))
	log.Printf("Pawn: %s released captive %s", p.id, pet.id)
}

// HandOver gives the carried pet to a grooming station. The pet stays
// captured and the groomer's hands are free again.
func (p *Pawn) HandOver() *Pawn {
	pet := p.captive
	if pet == nil {
		return nil
	}

	p.captive = nil
	log.Printf("Pawn: %s handed %s over for grooming", p.id, pet.id)
	return pet
}
