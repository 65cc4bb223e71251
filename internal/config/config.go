package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the simulator
type Config struct {
	Sim   SimConfig
	Redis RedisConfig
	// BalanceFile optionally overrides the default tunables
	BalanceFile string
}

// SimConfig controls the batch of matches
type SimConfig struct {
	Matches      int
	TickRate     float64
	MatchSeconds float64
	Seed         int64
	Workers      int
	// Timeout bounds the whole batch; zero means no limit
	Timeout time.Duration
	Verbose bool
}

// RedisConfig holds Redis-specific configuration. Results stay in memory
// when neither Addr nor URL is set.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	URL       string
	ResultTTL time.Duration
}

// Enabled reports whether a Redis store was configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != "" || r.URL != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Sim: SimConfig{
			Matches:      getEnvAsIntOrDefault("SIM_MATCHES", 10),
			TickRate:     getEnvAsFloatOrDefault("SIM_TICK_RATE", 30),
			MatchSeconds: getEnvAsFloatOrDefault("SIM_MATCH_SECONDS", 90),
			Seed:         getEnvAsInt64OrDefault("SIM_SEED", 1),
			Workers:      getEnvAsIntOrDefault("SIM_WORKERS", 4),
			Timeout:      getEnvAsDurationOrDefault("SIM_TIMEOUT", 0),
			Verbose:      getEnvAsBoolOrDefault("SIM_VERBOSE", false),
		},
		Redis: RedisConfig{
			Addr:      os.Getenv("REDIS_ADDR"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
			URL:       os.Getenv("REDIS_URL"),
			ResultTTL: getEnvAsDurationOrDefault("REDIS_RESULT_TTL", 7*24*time.Hour),
		},
		BalanceFile: os.Getenv("BALANCE_FILE"),
	}

	// Validate required fields
	if cfg.Sim.Matches <= 0 {
		return nil, fmt.Errorf("SIM_MATCHES must be positive")
	}
	if cfg.Sim.TickRate <= 0 {
		return nil, fmt.Errorf("SIM_TICK_RATE must be positive")
	}
	if cfg.Sim.MatchSeconds <= 0 {
		return nil, fmt.Errorf("SIM_MATCH_SECONDS must be positive")
	}
	if cfg.Sim.Workers <= 0 {
		return nil, fmt.Errorf("SIM_WORKERS must be positive")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := getEnvOrDefault(key, ""); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
