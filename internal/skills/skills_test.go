package skills_test

import (
	"testing"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	mockdice "github.com/KirkDiggler/pet-groomer/internal/dice/mock"
	"github.com/KirkDiggler/pet-groomer/internal/effects"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/events"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	mockscoring "github.com/KirkDiggler/pet-groomer/internal/scoring/mock"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/station"
	mockstation "github.com/KirkDiggler/pet-groomer/internal/station/mock"
	"github.com/KirkDiggler/pet-groomer/internal/targeting"
	"github.com/KirkDiggler/pet-groomer/internal/testutils"
	"github.com/KirkDiggler/pet-groomer/internal/world"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SkillsSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	world    *world.World
	resolver *targeting.Resolver
	board    *scoring.Board
	roller   *mockdice.ManualMockRoller
	bus      *events.Bus
	recorder *events.Recorder
	stations *station.Registry
	cfg      skills.Config

	groomer *actor.Pawn
	cat     *actor.Pawn
	dog     *actor.Pawn
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsSuite))
}

func (s *SkillsSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.world = world.New()
	s.resolver = targeting.NewResolver(s.world)
	s.board = scoring.NewBoard()
	s.roller = mockdice.NewManualMockRoller()
	s.bus = events.NewBus()
	s.recorder = events.NewRecorder()
	s.bus.SubscribeAll(s.recorder)
	s.stations = station.NewRegistry()
	s.cfg = skills.DefaultConfig()

	s.groomer = testutils.CreateTestGroomer("groomer", geom.Zero)
	s.cat = testutils.CreateTestCat("cat", geom.V(0, 0, 5))
	s.dog = testutils.CreateTestDog("dog", geom.V(3, 0, 0))
	s.Require().NoError(s.world.Add(s.groomer, world.Collider{Radius: 0.5}))
	s.Require().NoError(s.world.Add(s.cat, world.Collider{Radius: 0.4}))
	s.Require().NoError(s.world.Add(s.dog, world.Collider{Radius: 0.5}, world.Collider{Offset: geom.V(0, 0, 0.6), Radius: 0.3}))
}

func (s *SkillsSuite) deps(owner actor.Body) skills.Deps {
	return skills.Deps{
		Owner:    owner,
		Resolver: s.resolver,
		Scorer:   s.board,
		Roller:   s.roller,
		Stations: s.stations,
		Bus:      s.bus,
	}
}

func tickFor(tick func(float64), seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += dt {
		tick(dt)
	}
}

func (s *SkillsSuite) TestCaptureNet_SlowsFirstPetAhead() {
	net := skills.NewCaptureNet(s.cfg.CaptureNet, s.deps(s.groomer))

	s.True(net.Ability().TryActivate())

	active := s.cat.Effects().Active()
	s.Require().Len(active, 1)
	s.Equal(effects.Descriptor{Kind: effects.KindSlow, Magnitude: 0.5, Duration: 3.0, Source: skills.NameCaptureNet}, active[0].Descriptor)
	s.False(s.dog.Effects().Has(effects.KindSlow))
	s.Equal(1, s.recorder.Count(events.EventTypeEffectApplied))
	s.InDelta(8.0, net.Ability().RemainingCooldown(), 1e-9)
}

func (s *SkillsSuite) TestCaptureNet_MissStillConsumesCooldown() {
	s.groomer.Face(geom.V(-1, 0, 0))
	net := skills.NewCaptureNet(s.cfg.CaptureNet, s.deps(s.groomer))

	s.True(net.Ability().TryActivate())

	s.False(net.Ability().IsReady())
	s.Empty(s.cat.Effects().Active())
	s.Empty(s.dog.Effects().Active())
}

func (s *SkillsSuite) TestCaptureNet_SweepCatchesNearMiss() {
	s.cat.SetPosition(geom.V(0.9, 0, 5))
	net := skills.NewCaptureNet(s.cfg.CaptureNet, s.deps(s.groomer))

	s.True(net.Ability().TryActivate())

	s.True(s.cat.Effects().Has(effects.KindSlow))
}

func (s *SkillsSuite) TestMissingOwner_AbortsBeforeSideEffects() {
	deps := s.deps(nil)
	all := []skills.Skill{
		skills.NewCaptureNet(s.cfg.CaptureNet, deps),
		skills.NewLeash(s.cfg.Leash, deps),
		skills.NewCalmingSpray(s.cfg.CalmingSpray, deps),
		skills.NewAgileJump(s.cfg.AgileJump, deps),
		skills.NewFurDistraction(s.cfg.FurDistraction, deps),
		skills.NewHideInGap(s.cfg.HideInGap, deps),
		skills.NewPowerCharge(s.cfg.PowerCharge, deps),
		skills.NewIntimidatingBark(s.cfg.IntimidatingBark, deps),
		skills.NewStealTool(s.cfg.StealTool, deps),
	}

	for _, skill := range all {
		s.Run(skill.Name(), func() {
			s.True(apperr.IsFailedPrecondition(skill.Validate()))

			activated := 0
			skill.Ability().OnActivated(func() { activated++ })

			s.False(skill.Ability().TryActivate())
			s.True(skill.Ability().IsReady())
			s.Zero(activated)
		})
	}
	s.Empty(s.recorder.Events())
}

func (s *SkillsSuite) TestMissingResolver_AbortsActivation() {
	deps := s.deps(s.groomer)
	deps.Resolver = nil
	net := skills.NewCaptureNet(s.cfg.CaptureNet, deps)

	s.False(net.Ability().TryActivate())
	s.True(net.Ability().IsReady())
}

func (s *SkillsSuite) TestLeash_BreakFree() {
	tests := []struct {
		name      string
		pet       *actor.Pawn
		roll      float64
		breakFree bool
	}{
		{name: "cat below chance", pet: s.cat, roll: 0.59, breakFree: true},
		{name: "cat at chance", pet: s.cat, roll: 0.6, breakFree: false},
		{name: "dog below chance", pet: s.dog, roll: 0.39, breakFree: true},
		{name: "dog at chance", pet: s.dog, roll: 0.4, breakFree: false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.groomer.Face(geom.Direction(s.groomer.Position(), tt.pet.Position()))
			s.roller.Reset()
			s.roller.SetNextValue(tt.roll)
			leash := skills.NewLeash(s.cfg.Leash, s.deps(s.groomer))

			s.True(leash.Ability().TryActivate())

			s.Equal(1, s.roller.Calls())
			s.Equal(!tt.breakFree, leash.IsPulling())
			leash.CancelPull()
		})
	}
	s.Equal(2, s.recorder.Count(events.EventTypeBreakFree))
}

func (s *SkillsSuite) TestLeash_PullsOverDistanceOverSpeed() {
	s.roller.SetNextValue(0.99)
	leash := skills.NewLeash(s.cfg.Leash, s.deps(s.groomer))

	s.Require().True(leash.Ability().TryActivate())
	s.Require().True(leash.IsPulling())
	s.InDelta(5.0/s.cfg.Leash.PullSpeed, leash.PullDuration(), 1e-9)
	s.Equal("cat", leash.Target().ID())

	// Mid-pull the skill refuses even with the cooldown cleared
	leash.Ability().Tick(0.1)
	leash.Ability().ResetCooldown()
	s.False(leash.Ability().TryActivate())
	s.Less(s.cat.Position().Z, 5.0)

	tickFor(leash.Ability().Tick, 1, 0.1)

	s.False(leash.IsPulling())
	s.InDelta(s.cfg.Leash.StopDistance, s.cat.Position().Z, 1e-9)
}

func (s *SkillsSuite) TestLeash_CancelPullLeavesPetInPlace() {
	s.roller.SetNextValue(0.99)
	leash := skills.NewLeash(s.cfg.Leash, s.deps(s.groomer))
	s.Require().True(leash.Ability().TryActivate())

	leash.Ability().Tick(0.1)
	pos := s.cat.Position()
	s.True(leash.Ability().Cancel())
	leash.Ability().Tick(0.1)

	s.False(leash.IsPulling())
	s.Equal(pos, s.cat.Position())
}

func (s *SkillsSuite) TestLeash_StopsOnceTargetCaptured() {
	s.roller.SetNextValue(0.99)
	leash := skills.NewLeash(s.cfg.Leash, s.deps(s.groomer))
	s.Require().True(leash.Ability().TryActivate())
	leash.Ability().Tick(0.1)

	s.Require().True(s.groomer.Capture(s.cat))
	s.groomer.Tick(0.1)
	held := s.cat.Position()
	leash.Ability().Tick(0.1)

	s.False(leash.IsPulling())
	s.Nil(leash.Target())
	s.Equal(held, s.cat.Position())
}

func (s *SkillsSuite) TestCalmingSpray_StunsEachActorOnce() {
	s.cat.SetPosition(geom.V(0, 0, 2))
	spray := skills.NewCalmingSpray(s.cfg.CalmingSpray, s.deps(s.groomer))

	s.True(spray.Ability().TryActivate())

	for _, pet := range []*actor.Pawn{s.cat, s.dog} {
		active := pet.Effects().Active()
		s.Require().Len(active, 1, pet.ID())
		s.Equal(effects.KindStun, active[0].Kind)
		s.Equal(1.0, active[0].Duration)
	}
	s.False(s.groomer.Effects().IsStunned())
	s.Equal(2, s.recorder.Count(events.EventTypeEffectApplied))
}

func (s *SkillsSuite) TestAgileJump_TwoParabolicHops() {
	jump := skills.NewAgileJump(s.cfg.AgileJump, s.deps(s.cat))
	start := s.cat.Position()

	s.Require().True(jump.Ability().TryActivate())
	s.Equal(skills.JumpFirst, jump.Phase())

	jump.Ability().Tick(0.25)
	s.InDelta(2.0, s.cat.Position().Y, 1e-9)

	jump.Ability().Tick(0.25)
	s.Equal(skills.JumpSecond, jump.Phase(), "second hop starts on landing")
	s.InDelta(start.Z+2.5, s.cat.Position().Z, 1e-9)

	jump.Ability().Tick(0.25)
	s.InDelta(1.5, s.cat.Position().Y, 1e-9)
	s.True(jump.IsJumping())
	jump.Ability().ResetCooldown()
	s.False(jump.Ability().TryActivate())

	jump.Ability().Tick(0.25)
	s.False(jump.IsJumping())
	s.InDelta(0.0, s.cat.Position().Y, 1e-9)
	s.InDelta(start.Z+5, s.cat.Position().Z, 1e-9)
}

func (s *SkillsSuite) TestAgileJump_CancelLands() {
	jump := skills.NewAgileJump(s.cfg.AgileJump, s.deps(s.cat))
	s.Require().True(jump.Ability().TryActivate())
	jump.Ability().Tick(0.2)

	jump.CancelJump()

	s.False(jump.IsJumping())
	s.Zero(s.cat.Position().Y)
	s.Zero(jump.Height())
}

func (s *SkillsSuite) TestFurDistraction_NeedsLastKnownPosition() {
	scorer := mockscoring.NewMockScorer(s.ctrl)
	deps := s.deps(s.cat)
	deps.Scorer = scorer
	fur := skills.NewFurDistraction(s.cfg.FurDistraction, deps)

	s.True(fur.Ability().TryActivate())
	s.False(s.groomer.Effects().IsVisionBlocked())
	s.False(fur.Ability().IsReady())
}

func (s *SkillsSuite) TestFurDistraction_HitBlocksVisionAndScores() {
	scorer := mockscoring.NewMockScorer(s.ctrl)
	scorer.EXPECT().AddSkillHitScore("cat").Times(1)
	deps := s.deps(s.cat)
	deps.Scorer = scorer
	fur := skills.NewFurDistraction(s.cfg.FurDistraction, deps)

	fur.TrackOpponent(s.groomer)
	s.True(fur.Ability().TryActivate())

	s.True(s.groomer.Effects().IsVisionBlocked())
	s.InDelta(2.0, s.groomer.Effects().Remaining(effects.KindVisionBlock), 1e-9)
	s.Equal(1, s.recorder.Count(events.EventTypeSkillHit))
}

func (s *SkillsSuite) TestFurDistraction_BlockedByTeammate() {
	s.cat.SetPosition(geom.Zero)
	s.dog.SetPosition(geom.V(0, 0, 3))
	s.groomer.SetPosition(geom.V(0, 0, 8))
	fur := skills.NewFurDistraction(s.cfg.FurDistraction, s.deps(s.cat))

	fur.TrackOpponent(s.groomer)
	s.True(fur.Ability().TryActivate())

	s.False(s.groomer.Effects().IsVisionBlocked())
	s.False(s.dog.Effects().IsVisionBlocked())
	s.Zero(s.recorder.Count(events.EventTypeSkillHit))
}

func (s *SkillsSuite) TestHideInGap_OpacityFollowsMovement() {
	hide := skills.NewHideInGap(s.cfg.HideInGap, s.deps(s.cat))

	s.Require().True(hide.Ability().TryActivate())
	s.Equal(0.0, s.cat.Opacity())

	hide.Ability().Tick(0.1)
	s.Equal(skills.StationaryOpacity, s.cat.Opacity())

	s.cat.SetPosition(s.cat.Position().Add(geom.V(0.5, 0, 0)))
	hide.Ability().Tick(0.1)
	s.Equal(skills.MovingOpacity, s.cat.Opacity())
	s.True(hide.IsMovingNow())

	hide.Ability().Tick(0.1)
	s.Equal(skills.StationaryOpacity, s.cat.Opacity())

	tickFor(hide.Ability().Tick, 3, 0.1)
	s.False(hide.IsHiding())
	s.Equal(1.0, s.cat.Opacity())
}

func (s *SkillsSuite) TestHideInGap_CancelRestoresOpacity() {
	hide := skills.NewHideInGap(s.cfg.HideInGap, s.deps(s.cat))
	s.Require().True(hide.Ability().TryActivate())

	hide.CancelHide()

	s.False(hide.IsHiding())
	s.Equal(1.0, s.cat.Opacity())
	s.Zero(hide.Remaining())
}

func (s *SkillsSuite) TestPowerCharge_HitReleasesCaptive() {
	s.dog.SetPosition(geom.V(0, 0, -3))
	s.groomer.SetPosition(geom.Zero)
	s.Require().True(s.groomer.Capture(s.cat))
	charge := skills.NewPowerCharge(s.cfg.PowerCharge, s.deps(s.dog))

	charge.TrackOpponent(s.groomer)
	s.Require().True(charge.Ability().TryActivate())
	s.True(charge.IsCharging())

	tickFor(charge.Ability().Tick, 0.5, 0.1)

	s.False(charge.IsCharging())
	s.False(s.groomer.IsCarryingCaptive())
	s.False(s.cat.IsCaptured())
	s.Equal(scoring.SkillHitPoints, s.board.Total("dog"))
	s.Equal(1, s.recorder.Count(events.EventTypeCaptiveReleased))
}

func (s *SkillsSuite) TestPowerCharge_DashEndsAtDistance() {
	s.dog.SetPosition(geom.V(10, 0, 0))
	s.dog.Face(geom.V(1, 0, 0))
	charge := skills.NewPowerCharge(s.cfg.PowerCharge, s.deps(s.dog))

	s.Require().True(charge.Ability().TryActivate())
	charge.Ability().ResetCooldown()
	s.False(charge.Ability().TryActivate(), "mid-dash")

	tickFor(charge.Ability().Tick, 1, 0.1)

	s.False(charge.IsCharging())
	s.InDelta(s.cfg.PowerCharge.DashDistance, charge.Travelled(), 1e-9)
	s.InDelta(16.0, s.dog.Position().X, 1e-9)
	s.False(charge.OnHit(s.groomer), "hits only count mid-dash")
	s.Zero(s.board.Total("dog"))
}

func (s *SkillsSuite) TestIntimidatingBark_SlowsNearbyOpponent() {
	bark := skills.NewIntimidatingBark(s.cfg.IntimidatingBark, s.deps(s.dog))

	s.True(bark.Ability().TryActivate())

	active := s.groomer.Effects().Active()
	s.Require().Len(active, 1)
	s.Equal(effects.Descriptor{Kind: effects.KindSlow, Magnitude: 0.2, Duration: 3.0, Source: skills.NameIntimidatingBark}, active[0].Descriptor)
	s.False(s.cat.Effects().Has(effects.KindSlow), "pets are not scared")
	s.Equal(scoring.SkillHitPoints, s.board.Total("dog"))
}

func (s *SkillsSuite) TestIntimidatingBark_NoOpponentInRange() {
	s.dog.SetPosition(geom.V(20, 0, 0))
	bark := skills.NewIntimidatingBark(s.cfg.IntimidatingBark, s.deps(s.dog))

	s.True(bark.Ability().TryActivate())

	s.Empty(s.groomer.Effects().Active())
	s.Zero(s.board.Total("dog"))
}

func (s *SkillsSuite) TestStealTool_RequiresStationInRange() {
	steal := skills.NewStealTool(s.cfg.StealTool, s.deps(s.dog))

	s.False(steal.Ability().CanActivate())
	s.False(steal.Ability().TryActivate())
	s.True(steal.Ability().IsReady(), "blocked activation keeps the ability ready")

	table := station.New("table", geom.V(4, 0, 0), 3)
	s.Require().NoError(s.stations.Add(table))

	s.True(steal.Ability().TryActivate())
	steal.Ability().ResetCooldown()
	s.True(steal.Ability().TryActivate())

	s.Equal(5, table.TotalSteps())
	s.Equal(2, s.recorder.Count(events.EventTypeStationSabotaged))
}

func (s *SkillsSuite) TestStealTool_UsesLocator() {
	locator := mockstation.NewMockLocator(s.ctrl)
	table := station.New("table", geom.V(1, 0, 0), 3)
	locator.EXPECT().NearestInRange(s.dog.Position(), s.cfg.StealTool.Range).Return(table, true).Times(2)

	deps := s.deps(s.dog)
	deps.Stations = locator
	steal := skills.NewStealTool(s.cfg.StealTool, deps)

	s.True(steal.Ability().TryActivate())
	s.Equal(station.CalculateTotalGroomingSteps(3, 1), table.TotalSteps())
}

func (s *SkillsSuite) TestCancelUnsupported() {
	net := skills.NewCaptureNet(s.cfg.CaptureNet, s.deps(s.groomer))
	s.False(net.Ability().Cancel())
}
