package skillmanager

import (
	"log"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/dice"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
)

// ControllerConfig throttles how often an AI actor thinks and how often it
// acts on what it decided
type ControllerConfig struct {
	DecisionInterval float64 `yaml:"decision_interval"`
	UsageChance      float64 `yaml:"usage_chance"`
}

// DefaultControllerConfig returns one decision per second at 70% usage
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		DecisionInterval: 1,
		UsageChance:      0.7,
	}
}

// Validate checks the throttle values
func (c ControllerConfig) Validate() error {
	if c.DecisionInterval < 0 {
		return apperr.Validationf("decision_interval out of range: %g", c.DecisionInterval)
	}
	if c.UsageChance < 0 || c.UsageChance > 1 {
		return apperr.Validationf("usage_chance out of range: %g", c.UsageChance)
	}
	return nil
}

// NewEngine returns the decision table for a pet species
func NewEngine(species actor.Species, cat CatTunables, dog DogTunables) (Engine, error) {
	switch species {
	case actor.SpeciesCat:
		return NewCatEngine(cat), nil
	case actor.SpeciesDog:
		return NewDogEngine(dog), nil
	default:
		return nil, apperr.InvalidArgumentf("no decision engine for species %s", species)
	}
}

// Controller drives an AI actor's manager. Time is simulated, advanced by
// Tick, so decisions are reproducible.
type Controller struct {
	manager *Manager
	engine  Engine
	roller  dice.Roller
	cfg     ControllerConfig

	now          float64
	lastDecision float64
}

// NewController creates a controller. The first decision happens one
// interval after creation.
func NewController(manager *Manager, engine Engine, roller dice.Roller, cfg ControllerConfig) *Controller {
	if manager == nil {
		panic("controller manager is required")
	}
	if engine == nil {
		panic("controller engine is required")
	}
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &Controller{
		manager: manager,
		engine:  engine,
		roller:  roller,
		cfg:     cfg,
	}
}

// Manager returns the controlled skill manager
func (c *Controller) Manager() *Manager { return c.manager }

// Now returns the controller's simulated clock
func (c *Controller) Now() float64 { return c.now }

// Tick advances the clock and the manager's abilities
func (c *Controller) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	c.now += dt
	c.manager.Tick(dt)
}

// BuildContext snapshots the situation between self and opponent
func (c *Controller) BuildContext(self, opponent actor.Actor) Context {
	ctx := Context{
		SelfState: actor.StateIdle,
	}
	if self != nil && opponent != nil {
		ctx.Distance = geom.Distance(self.Position(), opponent.Position())
	}
	if r, ok := self.(actor.StateReporter); ok {
		ctx.SelfState = r.State()
	}
	if carrier, ok := opponent.(actor.CaptiveCarrier); ok {
		ctx.OpponentCarryingCaptive = carrier.IsCarryingCaptive()
	}
	for i := 0; i < SkillCount; i++ {
		ctx.Ready[i] = c.manager.IsSkillReady(i)
		ctx.CanActivate[i] = c.manager.CanActivateSkill(i)
	}
	return ctx
}

// EvaluateAndUseSkills runs at most one decision per interval. It returns
// the activated slot, or false when nothing was used.
func (c *Controller) EvaluateAndUseSkills(self, opponent actor.Actor) (int, bool) {
	if c.now-c.lastDecision < c.cfg.DecisionInterval {
		return -1, false
	}
	c.lastDecision = c.now

	if opponent == nil {
		return -1, false
	}

	for i := 0; i < SkillCount; i++ {
		if tracker, ok := c.manager.Skill(i).(skills.OpponentTracker); ok {
			tracker.TrackOpponent(opponent)
		}
	}

	ctx := c.BuildContext(self, opponent)
	slot, ok := c.engine.EvaluateBestSkill(ctx)
	if !ok {
		return -1, false
	}

	if !dice.Chance(c.roller, c.cfg.UsageChance) {
		return -1, false
	}

	if !c.manager.TryActivateSkill(slot) {
		log.Printf("SkillManager: %s chose slot %d but activation was refused", c.manager.Owner().ID(), slot)
		return -1, false
	}
	return slot, true
}
