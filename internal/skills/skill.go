// Package skills holds the nine concrete abilities. Each skill is a
// Behavior plugged into an ability.Ability; the Ability owns the cooldown and
// the skill owns targeting, effects and any multi-phase movement.
package skills

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/dice"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	"github.com/KirkDiggler/pet-groomer/internal/station"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// Skill names
const (
	NameCaptureNet       = "CaptureNet"
	NameLeash            = "Leash"
	NameCalmingSpray     = "CalmingSpray"
	NameAgileJump        = "AgileJump"
	NameFurDistraction   = "FurDistraction"
	NameHideInGap        = "HideInGap"
	NamePowerCharge      = "PowerCharge"
	NameIntimidatingBark = "IntimidatingBark"
	NameStealTool        = "StealTool"
)

// Skill is a behavior that knows its own ability
type Skill interface {
	ability.Behavior
	Name() string
	Ability() *ability.Ability
}

// OpponentTracker is implemented by skills that aim at the opponent's
// last known position
type OpponentTracker interface {
	TrackOpponent(opponent actor.Actor)
}

// Deps are the collaborators a skill is wired with at spawn. Only Owner is
// required by every skill; the rest are checked by the skills that use them.
type Deps struct {
	Owner    actor.Body
	Resolver *targeting.Resolver
	Scorer   scoring.Scorer
	Roller   dice.Roller
	Stations station.Locator
	Bus      *events.Bus
}

// base carries what every skill shares
type base struct {
	name    string
	deps    Deps
	ability *ability.Ability
}

func (b *base) Name() string              { return b.name }
func (b *base) Ability() *ability.Ability { return b.ability }
func (b *base) CanActivate() bool         { return true }
func (b *base) Tick(float64)              {}

// Validate implements ability.Behavior
func (b *base) Validate() error {
	if b.deps.Owner == nil {
		return apperr.FailedPreconditionf("%s has no owner", b.name).WithMeta("skill", b.name)
	}
	return nil
}

func (b *base) requireResolver() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.deps.Resolver == nil {
		return apperr.FailedPreconditionf("%s has no target resolver", b.name).WithMeta("skill", b.name)
	}
	return nil
}

func (b *base) ownerID() string {
	if b.deps.Owner == nil {
		return ""
	}
	return b.deps.Owner.ID()
}

// deliver hands an effect to the target once and announces it
func (b *base) deliver(target actor.Actor, d effects.Descriptor) bool {
	if !effects.Deliver(target, d) {
		return false
	}
	log.Printf("Skills: %s applied %s to %s", b.name, d, target.ID())
	events.Publish(b.deps.Bus, &events.GameEvent{
		Type:     events.EventTypeEffectApplied,
		ActorID:  b.ownerID(),
		TargetID: target.ID(),
		Ability:  b.name,
		Value:    d.Magnitude,
		Detail:   d.Kind.String(),
	})
	return true
}

// awardHit credits the owner with a skill hit on target
func (b *base) awardHit(target actor.Actor) {
	if b.deps.Scorer != nil {
		b.deps.Scorer.AddSkillHitScore(b.ownerID())
	}
	events.Publish(b.deps.Bus, &events.GameEvent{
		Type:     events.EventTypeSkillHit,
		ActorID:  b.ownerID(),
		TargetID: target.ID(),
		Ability:  b.name,
		Value:    scoring.SkillHitPoints,
	})
}

func (b *base) publish(eventType events.EventType, targetID, detail string) {
	events.Publish(b.deps.Bus, &events.GameEvent{
		Type:     eventType,
		ActorID:  b.ownerID(),
		TargetID: targetID,
		Ability:  b.name,
		Detail:   detail,
	})
}
