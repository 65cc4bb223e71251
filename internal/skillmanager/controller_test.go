package skillmanager_test

import (
	"github.com/KirkDiggler/pet-groomer/internal/actor"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	"github.com/KirkDiggler/pet-groomer/internal/skillmanager"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/testutils"
)

// fakeCarrier is a groomer stand-in that counts releases
type fakeCarrier struct {
	id       string
	position geom.Vec3
	carrying bool
	releases int
}

func (f *fakeCarrier) ID() string              { return f.id }
func (f *fakeCarrier) Species() actor.Species  { return actor.SpeciesGroomer }
func (f *fakeCarrier) Position() geom.Vec3     { return f.position }
func (f *fakeCarrier) IsCarryingCaptive() bool { return f.carrying }
func (f *fakeCarrier) ReleaseCaptive() {
	f.releases++
	f.carrying = false
}

func (s *ManagerSuite) newController(engine skillmanager.Engine, cfg skillmanager.ControllerConfig) *skillmanager.Controller {
	return skillmanager.NewController(s.manager, engine, s.roller, cfg)
}

func (s *ManagerSuite) TestController_Throttle() {
	s.roller.SetNextValue(0)
	groomer := testutils.CreateTestGroomer("groomer", geom.V(0, 0, 5))
	ctrl := s.newController(skillmanager.NewDogEngine(skillmanager.DefaultDogTunables()), skillmanager.DefaultControllerConfig())

	_, ok := ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok, "first decision waits one interval")

	ctrl.Tick(0.5)
	_, ok = ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok)
	s.Zero(s.roller.Calls())

	ctrl.Tick(0.5)
	slot, ok := ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.True(ok)
	s.Equal(skillmanager.DogSlotIntimidatingBark, slot)
	s.Equal(1, s.roller.Calls())

	_, ok = ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok, "same tick is throttled")
}

func (s *ManagerSuite) TestController_UsageChanceGate() {
	groomer := testutils.CreateTestGroomer("groomer", geom.V(0, 0, 5))
	ctrl := s.newController(skillmanager.NewDogEngine(skillmanager.DefaultDogTunables()), skillmanager.ControllerConfig{
		DecisionInterval: 1,
		UsageChance:      0.7,
	})
	ctrl.Tick(1)

	s.roller.SetValues([]float64{0.9})
	_, ok := ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok)
	s.True(s.manager.IsSkillReady(skillmanager.DogSlotIntimidatingBark))
	s.Zero(s.recorder.Count(events.EventTypeSkillActivated))

	_, ok = ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok, "a gated decision still consumes the interval")

	ctrl.Tick(1)
	s.roller.SetValues([]float64{0.69})
	slot, ok := ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.True(ok)
	s.Equal(skillmanager.DogSlotIntimidatingBark, slot)
}

func (s *ManagerSuite) TestController_NoRuleMatches() {
	groomer := testutils.CreateTestGroomer("groomer", geom.V(0, 0, 30))
	ctrl := s.newController(skillmanager.NewDogEngine(skillmanager.DefaultDogTunables()), skillmanager.ControllerConfig{UsageChance: 1})

	_, ok := ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.False(ok)
	s.Zero(s.roller.Calls(), "no draw without a decision")
}

func (s *ManagerSuite) TestController_BuildContext() {
	s.dog.SetState(actor.StateFleeing)
	groomer := &fakeCarrier{id: "groomer", position: geom.V(0, 0, 3), carrying: true}
	ctrl := s.newController(skillmanager.NewDogEngine(skillmanager.DefaultDogTunables()), skillmanager.DefaultControllerConfig())
	s.Require().True(s.manager.TryActivateSkill(skillmanager.DogSlotIntimidatingBark))

	ctx := ctrl.BuildContext(s.dog, groomer)

	s.InDelta(3, ctx.Distance, 1e-9)
	s.Equal(actor.StateFleeing, ctx.SelfState)
	s.True(ctx.OpponentCarryingCaptive)
	s.Equal([skillmanager.SkillCount]bool{true, false, true}, ctx.Ready)
	s.Equal([skillmanager.SkillCount]bool{true, false, false}, ctx.CanActivate)
}

func (s *ManagerSuite) TestDogRescuesCaptive() {
	groomer := &fakeCarrier{id: "groomer", position: geom.V(0, 0, 3), carrying: true}
	engine := skillmanager.NewDogEngine(skillmanager.DogTunables{
		ChargeTriggerDistance: 4,
		BarkTriggerDistance:   6,
	})
	ctrl := s.newController(engine, skillmanager.ControllerConfig{UsageChance: 1})

	slot, ok := engine.EvaluateBestSkill(ctrl.BuildContext(s.dog, groomer))
	s.Require().True(ok)
	s.Equal(skillmanager.DogSlotPowerCharge, slot)

	s.roller.SetNextValue(0)
	slot, ok = ctrl.EvaluateAndUseSkills(s.dog, groomer)
	s.Require().True(ok)
	s.Equal(skillmanager.DogSlotPowerCharge, slot)

	charge := s.manager.Skill(slot).(*skills.PowerCharge)
	s.True(charge.OnHit(groomer))
	s.False(charge.OnHit(groomer), "a dash hits once")

	s.Equal(1, groomer.releases)
	s.False(groomer.IsCarryingCaptive())
	s.Equal(1, s.recorder.Count(events.EventTypeCaptiveReleased))
	s.Equal(scoring.SkillHitPoints, s.board.Total("dog"))
}
