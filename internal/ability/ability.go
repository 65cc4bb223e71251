// Package ability implements the cooldown state machine shared by every skill.
// An Ability is Ready or OnCooldown; what activating it actually does is
// delegated to a Behavior.
package ability

import (
	"log"
)

// Behavior is the ability-specific strategy plugged into the state machine
type Behavior interface {
	// Validate reports configuration errors such as a missing owner. A non-nil
	// error aborts activation before any side effect.
	Validate() error
	// CanActivate adds preconditions on top of readiness, e.g. not already
	// mid-dash or a station in range
	CanActivate() bool
	// Activate starts the behavior; the cooldown has already been started
	Activate()
	// Tick advances any multi-phase activation
	Tick(dt float64)
}

// Canceler is implemented by behaviors with an interruptible phase
type Canceler interface {
	Cancel()
}

// Ability is a cooldown-gated action. Invariant: 0 <= remaining <= cooldown.
// Not safe for concurrent use; the owning actor drives it from its tick.
type Ability struct {
	name      string
	cooldown  float64
	remaining float64
	// wasOnCooldown makes Ready fire once per cycle
	wasOnCooldown bool
	behavior      Behavior

	cooldownChanged []func(remaining float64)
	activated       []func()
	ready           []func()
}

// New creates an ability in the Ready state. Negative cooldowns are treated as 0.
func New(name string, cooldown float64, behavior Behavior) *Ability {
	if cooldown < 0 {
		cooldown = 0
	}
	return &Ability{
		name:     name,
		cooldown: cooldown,
		behavior: behavior,
	}
}

// Name returns the ability name
func (a *Ability) Name() string { return a.name }

// Behavior returns the plugged-in strategy
func (a *Ability) Behavior() Behavior { return a.behavior }

// CooldownDuration returns the full cooldown length in seconds
func (a *Ability) CooldownDuration() float64 { return a.cooldown }

// RemainingCooldown returns the seconds left before the ability is ready
func (a *Ability) RemainingCooldown() float64 { return a.remaining }

// IsReady reports whether the cooldown has elapsed
func (a *Ability) IsReady() bool { return a.remaining == 0 }

// Progress returns remaining/cooldown, or 0 for abilities without a cooldown
func (a *Ability) Progress() float64 {
	if a.cooldown == 0 {
		return 0
	}
	return a.remaining / a.cooldown
}

// CanActivate reports readiness plus the behavior's own preconditions
func (a *Ability) CanActivate() bool {
	if !a.IsReady() {
		return false
	}
	if a.behavior == nil {
		return true
	}
	return a.behavior.CanActivate()
}

// TryActivate starts the cooldown and the behavior when allowed. Denial is
// reported as false and leaves all state untouched.
func (a *Ability) TryActivate() bool {
	if a.behavior != nil {
		if err := a.behavior.Validate(); err != nil {
			log.Printf("Ability: %s activation aborted: %v", a.name, err)
			return false
		}
	}
	if !a.CanActivate() {
		return false
	}

	a.remaining = a.cooldown
	a.wasOnCooldown = a.remaining > 0

	if a.behavior != nil {
		a.behavior.Activate()
	}

	a.emitActivated()
	a.emitCooldownChanged(a.remaining)
	return true
}

// Tick advances the behavior and counts the cooldown down by dt seconds
func (a *Ability) Tick(dt float64) {
	if dt < 0 {
		return
	}
	if a.behavior != nil {
		a.behavior.Tick(dt)
	}

	if a.remaining > 0 && dt > 0 {
		if a.remaining-dt > 0 {
			a.remaining -= dt
			a.emitCooldownChanged(a.remaining)
			return
		}
		a.remaining = 0
		a.emitCooldownChanged(0)
	}

	if a.remaining == 0 && a.wasOnCooldown {
		a.wasOnCooldown = false
		a.emitReady()
	}
}

// ResetCooldown makes the ability ready immediately. Events fire only if it
// was actually cooling down.
func (a *Ability) ResetCooldown() {
	if a.remaining == 0 {
		return
	}
	a.remaining = 0
	a.wasOnCooldown = false
	a.emitCooldownChanged(0)
	a.emitReady()
}

// SetCooldown forces the remaining cooldown, clamped to [0, cooldown]
func (a *Ability) SetCooldown(t float64) {
	if t <= 0 {
		a.ResetCooldown()
		return
	}
	if t > a.cooldown {
		t = a.cooldown
	}
	a.remaining = t
	a.wasOnCooldown = t > 0
	a.emitCooldownChanged(a.remaining)
}

// Cancel interrupts the behavior's active phase if it supports it
func (a *Ability) Cancel() bool {
	canceler, ok := a.behavior.(Canceler)
	if !ok {
		return false
	}
	canceler.Cancel()
	return true
}

// OnCooldownChanged registers an observer for remaining-cooldown updates
func (a *Ability) OnCooldownChanged(fn func(remaining float64)) {
	a.cooldownChanged = append(a.cooldownChanged, fn)
}

// OnActivated registers an observer for successful activations
func (a *Ability) OnActivated(fn func()) {
	a.activated = append(a.activated, fn)
}

// OnReady registers an observer for the end of each cooldown cycle
func (a *Ability) OnReady(fn func()) {
	a.ready = append(a.ready, fn)
}

func (a *Ability) emitCooldownChanged(remaining float64) {
	for _, fn := range a.cooldownChanged {
		fn(remaining)
	}
}

func (a *Ability) emitActivated() {
	for _, fn := range a.activated {
		fn()
	}
}

func (a *Ability) emitReady() {
	for _, fn := range a.ready {
		fn()
	}
}
