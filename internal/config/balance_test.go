package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/pet-groomer/internal/config"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/match"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBalance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadBalance_EmptyPathIsDefault(t *testing.T) {
	b, err := config.LoadBalance("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBalance(), b)
	assert.NoError(t, b.Validate())
}

func TestLoadBalance_OverridesKeepDefaults(t *testing.T) {
	path := writeBalance(t, `
skills:
  capture_net:
    cooldown: 5
  steal_tool:
    extra_steps: 2
ai:
  dog:
    charge_trigger_distance: 4
  controller:
    usage_chance: 1
match:
  flee_distance: 9
`)

	b, err := config.LoadBalance(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, b.Skills.CaptureNet.Cooldown)
	assert.Equal(t, skills.DefaultConfig().CaptureNet.Range, b.Skills.CaptureNet.Range)
	assert.Equal(t, 2, b.Skills.StealTool.ExtraSteps)
	assert.Equal(t, 4.0, b.AI.Dog.ChargeTriggerDistance)
	assert.Equal(t, 6.0, b.AI.Dog.BarkTriggerDistance)
	assert.Equal(t, 1.0, b.AI.Controller.UsageChance)
	assert.Equal(t, 1.0, b.AI.Controller.DecisionInterval)
	assert.Equal(t, 9.0, b.Match.FleeDistance)
	assert.Equal(t, match.DefaultSettings().CatSpeed, b.Match.CatSpeed)
}

func TestLoadBalance_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(error) bool
	}{
		{
			name:  "malformed yaml",
			body:  "skills: [",
			check: apperr.IsInvalidArgument,
		},
		{
			name:  "magnitude above one",
			body:  "skills:\n  capture_net:\n    slow_magnitude: 1.5\n",
			check: apperr.IsValidation,
		},
		{
			name:  "negative trigger distance",
			body:  "ai:\n  cat:\n    hide_trigger_distance: -1\n",
			check: apperr.IsValidation,
		},
		{
			name:  "usage chance above one",
			body:  "ai:\n  controller:\n    usage_chance: 2\n",
			check: apperr.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadBalance(writeBalance(t, tt.body))
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
		})
	}
}

func TestLoadBalance_MissingFile(t *testing.T) {
	_, err := config.LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, apperr.IsNotFound(err))
}

func TestLoadBalance_ExampleFile(t *testing.T) {
	b, err := config.LoadBalance(filepath.Join("..", "..", "configs", "balance.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBalance(), b)
}

func TestBalance_MatchOptions(t *testing.T) {
	b := config.DefaultBalance()
	b.AI.Controller.UsageChance = 0.5

	opts := b.MatchOptions(config.SimConfig{TickRate: 20, MatchSeconds: 30}, 99)

	assert.Equal(t, int64(99), opts.Seed)
	assert.Equal(t, 20.0, opts.TickRate)
	assert.Equal(t, 30.0, opts.Duration)
	assert.Equal(t, 0.5, opts.Controller.UsageChance)
	assert.Equal(t, b.Match, opts.Settings)
}
