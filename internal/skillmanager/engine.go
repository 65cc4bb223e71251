package skillmanager

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
)

// Context is the situation an engine decides on. It is rebuilt for every
// evaluation.
type Context struct {
	Distance                float64
	SelfState               actor.State
	OpponentCarryingCaptive bool
	Ready                   [SkillCount]bool
	CanActivate             [SkillCount]bool
}

// Usable reports whether a slot is both ready and allowed
func (c Context) Usable(slot int) bool {
	if slot < 0 || slot >= SkillCount {
		return false
	}
	return c.Ready[slot] && c.CanActivate[slot]
}

// Fleeing reports whether the actor is running away
func (c Context) Fleeing() bool {
	return c.SelfState == actor.StateFleeing
}

// Engine picks the slot to use, or false when no rule matches. The same
// context always yields the same answer.
type Engine interface {
	EvaluateBestSkill(ctx Context) (int, bool)
}

// Rule is one line of a priority table: when the condition holds, the first
// usable slot in Slots wins
type Rule struct {
	Name  string
	When  func(ctx Context) bool
	Slots []int
}

// RuleEngine evaluates rules in order
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine creates an engine over an ordered rule list
func NewRuleEngine(rules []Rule) *RuleEngine {
	return &RuleEngine{rules: rules}
}

// EvaluateBestSkill implements Engine
func (e *RuleEngine) EvaluateBestSkill(ctx Context) (int, bool) {
	slot, _, ok := e.evaluate(ctx)
	return slot, ok
}

// Explain returns the matching rule's name along with the slot
func (e *RuleEngine) Explain(ctx Context) (int, string, bool) {
	return e.evaluate(ctx)
}

// RuleNames lists the rules in priority order
func (e *RuleEngine) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

func (e *RuleEngine) evaluate(ctx Context) (int, string, bool) {
	for _, r := range e.rules {
		if r.When != nil && !r.When(ctx) {
			continue
		}
		for _, slot := range r.Slots {
			if ctx.Usable(slot) {
				return slot, r.Name, true
			}
		}
	}
	return -1, "", false
}
