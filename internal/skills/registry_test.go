package skills_test

import (
	"testing"

	"github.com/KirkDiggler/pet-groomer/internal/actor"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/geom"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Loadouts(t *testing.T) {
	registry := skills.NewDefaultRegistry(skills.DefaultConfig())
	assert.Len(t, registry.List(), 9)

	tests := []struct {
		owner    actor.Body
		names    [3]string
		cooldown [3]float64
	}{
		{
			owner:    testutils.CreateTestGroomer("groomer", geom.Zero),
			names:    [3]string{skills.NameCaptureNet, skills.NameLeash, skills.NameCalmingSpray},
			cooldown: [3]float64{8, 12, 13},
		},
		{
			owner:    testutils.CreateTestCat("cat", geom.Zero),
			names:    [3]string{skills.NameAgileJump, skills.NameFurDistraction, skills.NameHideInGap},
			cooldown: [3]float64{6, 10, 14},
		},
		{
			owner:    testutils.CreateTestDog("dog", geom.Zero),
			names:    [3]string{skills.NamePowerCharge, skills.NameIntimidatingBark, skills.NameStealTool},
			cooldown: [3]float64{8, 12, 12},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.owner.Species()), func(t *testing.T) {
			loadout, err := registry.BuildLoadout(skills.Deps{Owner: tt.owner})
			require.NoError(t, err)

			for i, skill := range loadout {
				assert.Equal(t, tt.names[i], skill.Name())
				assert.Equal(t, tt.names[i], skill.Ability().Name())
				assert.Equal(t, tt.cooldown[i], skill.Ability().CooldownDuration())
				assert.True(t, skill.Ability().IsReady())
			}
		})
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := skills.NewRegistry()

	_, err := registry.Build(skills.NameLeash, skills.Deps{})
	assert.True(t, apperr.IsNotFound(err))

	_, err = registry.BuildLoadout(skills.Deps{})
	assert.True(t, apperr.IsFailedPrecondition(err))

	_, err = registry.BuildLoadout(skills.Deps{Owner: testutils.CreateTestCat("cat", geom.Zero)})
	assert.True(t, apperr.IsNotFound(err), "missing factory keeps its code through the wrap")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, skills.DefaultConfig().Validate())

	cfg := skills.DefaultConfig()
	cfg.CaptureNet.SlowMagnitude = 1.5
	cfg.Leash.CatBreakFreeChance = -0.1
	cfg.AgileJump.Cooldown = -1
	cfg.StealTool.ExtraSteps = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "CaptureNet.slow_magnitude")
	assert.Contains(t, err.Error(), "Leash.cat_break_free_chance")
	assert.Contains(t, err.Error(), "AgileJump.cooldown")
	assert.Contains(t, err.Error(), "StealTool.extra_steps")
}
