package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SIM_MATCHES", "SIM_TICK_RATE", "SIM_MATCH_SECONDS", "SIM_SEED", "SIM_WORKERS", "SIM_TIMEOUT", "REDIS_ADDR", "REDIS_URL", "BALANCE_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Sim.Matches)
	assert.Equal(t, 30.0, cfg.Sim.TickRate)
	assert.Equal(t, 90.0, cfg.Sim.MatchSeconds)
	assert.Equal(t, int64(1), cfg.Sim.Seed)
	assert.Equal(t, 4, cfg.Sim.Workers)
	assert.Zero(t, cfg.Sim.Timeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 7*24*time.Hour, cfg.Redis.ResultTTL)
	assert.Empty(t, cfg.BalanceFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SIM_MATCHES", "25")
	t.Setenv("SIM_TICK_RATE", "60")
	t.Setenv("SIM_MATCH_SECONDS", "45.5")
	t.Setenv("SIM_SEED", "9000000000")
	t.Setenv("SIM_WORKERS", "8")
	t.Setenv("SIM_TIMEOUT", "2m")
	t.Setenv("SIM_VERBOSE", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_RESULT_TTL", "1h")
	t.Setenv("BALANCE_FILE", "balance.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Sim.Matches)
	assert.Equal(t, 60.0, cfg.Sim.TickRate)
	assert.Equal(t, 45.5, cfg.Sim.MatchSeconds)
	assert.Equal(t, int64(9000000000), cfg.Sim.Seed)
	assert.Equal(t, 8, cfg.Sim.Workers)
	assert.Equal(t, 2*time.Minute, cfg.Sim.Timeout)
	assert.True(t, cfg.Sim.Verbose)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Redis.ResultTTL)
	assert.Equal(t, "balance.yaml", cfg.BalanceFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "SIM_MATCHES", value: "0"},
		{key: "SIM_TICK_RATE", value: "-1"},
		{key: "SIM_MATCH_SECONDS", value: "0"},
		{key: "SIM_WORKERS", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestEnvHelpers_IgnoreGarbage(t *testing.T) {
	t.Setenv("TEST_INT", "ten")
	t.Setenv("TEST_FLOAT", "1.2.3")
	t.Setenv("TEST_DURATION", "soon")
	t.Setenv("TEST_BOOL", "maybe")

	assert.Equal(t, 3, getEnvAsIntOrDefault("TEST_INT", 3))
	assert.Equal(t, 1.5, getEnvAsFloatOrDefault("TEST_FLOAT", 1.5))
	assert.Equal(t, time.Second, getEnvAsDurationOrDefault("TEST_DURATION", time.Second))
	assert.True(t, getEnvAsBoolOrDefault("TEST_BOOL", true))
	assert.Equal(t, "fallback", getEnvOrDefault("TEST_UNSET_KEY", "fallback"))
}
