package match

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
)

// stepGroomer plays the scripted groomer: groom a carried pet, otherwise
// chase the nearest visible pet, use the first skill that can reach it and
// grab it once it is slowed or stunned
func (m *Match) stepGroomer(dt float64) {
	if m.isGrooming {
		m.stepGrooming(dt)
		return
	}

	if m.groomer.IsCarryingCaptive() {
		if m.station.IsWithinRange(m.groomer.Position(), m.settings.StationRange) {
			m.isGrooming = true
			m.grooming = float64(m.station.TotalSteps()) * m.settings.GroomStepSeconds
			m.groomer.SetState(actor.StateIdle)
			log.Printf("Match: %s grooming %s for %d steps", m.groomer.ID(), m.groomer.Captive().ID(), m.station.TotalSteps())
			return
		}
		m.groomer.SetState(actor.StateWandering)
		m.groomer.Move(geom.Direction(m.groomer.Position(), m.station.Position), dt)
		return
	}

	target := m.groomerTarget()
	if target == nil {
		m.groomer.SetState(actor.StateIdle)
		return
	}
	m.groomer.SetState(actor.StateChasing)
	m.groomer.Face(target.Position().Sub(m.groomer.Position()))

	if m.tryCapture(target) {
		return
	}

	m.groomerThink += dt
	if m.groomerThink >= m.settings.GroomerDecisionInterval {
		m.groomerThink = 0
		m.useGroomerSkill(target)
	}

	if leash, ok := m.groomerSkills.Skill(1).(*skills.Leash); ok && leash.IsPulling() {
		return
	}
	m.groomer.Move(geom.Direction(m.groomer.Position(), target.Position()), dt)
}

func (m *Match) stepGrooming(dt float64) {
	if !m.groomer.IsCarryingCaptive() {
		log.Printf("Match: %s lost the captive mid-grooming", m.groomer.ID())
		m.isGrooming = false
		m.grooming = 0
		return
	}

	m.grooming -= dt
	if m.grooming > 0 {
		return
	}

	groomed := m.groomer.HandOver()
	m.isGrooming = false
	m.grooming = 0
	m.world.Remove(groomed.ID())
	m.groomed = append(m.groomed, groomed.ID())
	for _, p := range m.pets() {
		if p.pawn == groomed {
			p.groomed = true
		}
	}
	m.extraSteps += m.station.ExtraSteps()
	m.station.ResetExtraSteps()

	events.Publish(m.bus, &events.GameEvent{
		Type:     events.EventTypeCaptured,
		ActorID:  m.groomer.ID(),
		TargetID: groomed.ID(),
		Value:    m.elapsed,
		Detail:   "groomed",
	})
}

// groomerTarget returns the nearest pet still loose and visible
func (m *Match) groomerTarget() *actor.Pawn {
	filter := targeting.All(
		targeting.Pets(),
		targeting.NotCaptured(),
		targeting.Visible(m.settings.MinVisibleOpacity),
	)

	var best *actor.Pawn
	bestDist := 0.0
	for _, p := range m.pets() {
		if p.groomed || !filter(p.pawn) {
			continue
		}
		d := geom.Distance(m.groomer.Position(), p.pawn.Position())
		if best == nil || d < bestDist {
			best = p.pawn
			bestDist = d
		}
	}
	return best
}

func (m *Match) tryCapture(target *actor.Pawn) bool {
	reach := m.groomer.Radius() + target.Radius() + m.settings.CaptureReach
	if geom.Distance(m.groomer.Position(), target.Position()) > reach {
		return false
	}

	tracker := target.Effects()
	if !tracker.Has(effects.KindSlow) && !tracker.IsStunned() {
		return false
	}
	if !m.groomer.Capture(target) {
		return false
	}

	for _, p := range m.pets() {
		if p.pawn == target {
			p.controller.Manager().CancelAll()
		}
	}
	m.groomer.Face(m.station.Position.Sub(m.groomer.Position()))
	events.Publish(m.bus, &events.GameEvent{
		Type:     events.EventTypeCaptured,
		ActorID:  m.groomer.ID(),
		TargetID: target.ID(),
		Value:    m.elapsed,
		Detail:   "held",
	})
	return true
}

// useGroomerSkill activates the first usable slot whose reach covers target
func (m *Match) useGroomerSkill(target *actor.Pawn) {
	d := geom.Distance(m.groomer.Position(), target.Position())
	for i := 0; i < skills.SlotCount; i++ {
		if !m.groomerSkills.CanActivateSkill(i) {
			continue
		}
		if d > m.reach(m.groomerSkills.Skill(i).Name()) {
			continue
		}
		m.groomerSkills.TryActivateSkill(i)
		return
	}
}

func (m *Match) reach(name string) float64 {
	cfg := m.opts.Skills
	switch name {
	case skills.NameCaptureNet:
		return cfg.CaptureNet.Range
	case skills.NameLeash:
		return cfg.Leash.Range
	case skills.NameCalmingSpray:
		return cfg.CalmingSpray.Radius
	default:
		return 0
	}
}
