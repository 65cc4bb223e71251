package match

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
)

// stepPet updates a loose pet's state, lets its controller decide and then
// moves it
func (m *Match) stepPet(p *pet, dt float64) {
	if p.groomed || p.pawn.IsCaptured() {
		return
	}

	pos := p.pawn.Position()
	d := geom.Distance(pos, m.groomer.Position())
	switch {
	case p.pawn.Species() == actor.SpeciesDog && m.groomer.IsCarryingCaptive():
		p.pawn.SetState(actor.StateChasing)
	case d <= m.settings.FleeDistance:
		p.pawn.SetState(actor.StateFleeing)
	default:
		p.pawn.SetState(actor.StateWandering)
	}

	p.controller.EvaluateAndUseSkills(p.pawn, m.groomer)

	if m.isBusy(p) {
		return
	}

	switch p.pawn.State() {
	case actor.StateChasing:
		p.pawn.Move(geom.Direction(pos, m.groomer.Position()), dt)
	case actor.StateFleeing:
		p.pawn.Move(geom.Direction(m.groomer.Position(), pos), dt)
	case actor.StateWandering:
		if p.pawn.Species() == actor.SpeciesDog && !m.station.IsWithinRange(pos, m.opts.Skills.StealTool.Range) {
			p.pawn.Move(geom.Direction(pos, m.station.Position), dt)
		}
	}
}

// isBusy reports whether a skill is driving the pet's position this tick
func (m *Match) isBusy(p *pet) bool {
	if leash, ok := m.groomerSkills.Skill(1).(*skills.Leash); ok && leash.IsPulling() {
		if target := leash.Target(); target != nil && target.ID() == p.pawn.ID() {
			return true
		}
	}

	manager := p.controller.Manager()
	for i := 0; i < skills.SlotCount; i++ {
		switch s := manager.Skill(i).(type) {
		case *skills.AgileJump:
			if s.IsJumping() {
				return true
			}
		case *skills.PowerCharge:
			if s.IsCharging() {
				return true
			}
		}
	}
	return false
}
