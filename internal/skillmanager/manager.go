// Package skillmanager owns an actor's three abilities and, for AI actors,
// decides which one to use.
package skillmanager

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
)

// SkillCount is the number of slots a manager holds
const SkillCount = skills.SlotCount

// Manager holds one actor's skills, indexed 0..2
type Manager struct {
	owner  actor.Actor
	skills [SkillCount]skills.Skill
	bus    *events.Bus

	activated []func(index int, a *ability.Ability)
	failed    []func(index int, a *ability.Ability)
}

// NewManager creates a manager for owner. Every slot must be filled.
func NewManager(owner actor.Actor, loadout [SkillCount]skills.Skill, bus *events.Bus) *Manager {
	if owner == nil {
		panic("manager owner is required")
	}
	for i, s := range loadout {
		if s == nil {
			log.Panicf("skill slot %d is required", i)
		}
	}

	return &Manager{
		owner:  owner,
		skills: loadout,
		bus:    bus,
	}
}

// Owner returns the actor the skills belong to
func (m *Manager) Owner() actor.Actor { return m.owner }

func (m *Manager) valid(index int, op string) bool {
	if index < 0 || index >= SkillCount {
		log.Printf("SkillManager: %s invalid skill index %d for %s", op, index, m.owner.ID())
		return false
	}
	return true
}

// Skill returns the behavior in a slot, or nil for an invalid index
func (m *Manager) Skill(index int) skills.Skill {
	if !m.valid(index, "Skill") {
		return nil
	}
	return m.skills[index]
}

// GetAbility returns the ability in a slot, or nil for an invalid index
func (m *Manager) GetAbility(index int) *ability.Ability {
	if !m.valid(index, "GetAbility") {
		return nil
	}
	return m.skills[index].Ability()
}

// TryActivateSkill activates a slot and notifies observers of the outcome
func (m *Manager) TryActivateSkill(index int) bool {
	if !m.valid(index, "TryActivateSkill") {
		return false
	}

	a := m.skills[index].Ability()
	if !a.TryActivate() {
		for _, fn := range m.failed {
			fn(index, a)
		}
		m.publish(events.EventTypeSkillActivationFailed, index, a)
		return false
	}

	for _, fn := range m.activated {
		fn(index, a)
	}
	m.publish(events.EventTypeSkillActivated, index, a)
	return true
}

// IsSkillReady reports whether a slot's cooldown has elapsed
func (m *Manager) IsSkillReady(index int) bool {
	if !m.valid(index, "IsSkillReady") {
		return false
	}
	return m.skills[index].Ability().IsReady()
}

// CanActivateSkill reports readiness plus the skill's own preconditions
func (m *Manager) CanActivateSkill(index int) bool {
	if !m.valid(index, "CanActivateSkill") {
		return false
	}
	return m.skills[index].Ability().CanActivate()
}

// GetSkillCooldown returns a slot's remaining cooldown
func (m *Manager) GetSkillCooldown(index int) float64 {
	if !m.valid(index, "GetSkillCooldown") {
		return 0
	}
	return m.skills[index].Ability().RemainingCooldown()
}

// ResetAllCooldowns makes every slot ready
func (m *Manager) ResetAllCooldowns() {
	for _, s := range m.skills {
		s.Ability().ResetCooldown()
	}
}

// CancelAll interrupts every skill with an active phase
func (m *Manager) CancelAll() {
	for _, s := range m.skills {
		s.Ability().Cancel()
	}
}

// Tick advances every ability
func (m *Manager) Tick(dt float64) {
	for _, s := range m.skills {
		s.Ability().Tick(dt)
	}
}

// OnSkillActivated registers an observer for successful activations
func (m *Manager) OnSkillActivated(fn func(index int, a *ability.Ability)) {
	m.activated = append(m.activated, fn)
}

// OnSkillActivationFailed registers an observer for denied activations
func (m *Manager) OnSkillActivationFailed(fn func(index int, a *ability.Ability)) {
	m.failed = append(m.failed, fn)
}

func (m *Manager) publish(eventType events.EventType, index int, a *ability.Ability) {
	events.Publish(m.bus, &events.GameEvent{
		Type:    eventType,
		ActorID: m.owner.ID(),
		Ability: a.Name(),
		Slot:    index,
		Value:   a.RemainingCooldown(),
	})
}
