package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pet-groomer/internal/config"
	"github.com/KirkDiggler/pet-groomer/internal/match"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	"github.com/KirkDiggler/pet-groomer/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	balance, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		log.Fatalf("Failed to load balance: %v", err)
	}
	if cfg.BalanceFile != "" {
		log.Printf("Loaded balance from %s", cfg.BalanceFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	if cfg.Sim.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Sim.Timeout)
		defer cancel()
	}

	store, redisClient := openStore(ctx, cfg)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			} else {
				log.Println("Closed Redis connection")
			}
		}()
	}

	ids := uuid.NewGoogleUUIDGenerator()
	log.Printf("Running %d matches on %d workers (seed %d)", cfg.Sim.Matches, cfg.Sim.Workers, cfg.Sim.Seed)
	started := time.Now()

	results, err := match.RunBatch(ctx, match.BatchConfig{
		Matches:  cfg.Sim.Matches,
		Workers:  cfg.Sim.Workers,
		BaseSeed: cfg.Sim.Seed,
		Store:    store,
		Options: func(seed int64) match.Options {
			opts := balance.MatchOptions(cfg.Sim, seed)
			opts.IDs = ids
			return opts
		},
	})
	if err != nil {
		log.Printf("Batch failed: %v", err)
		return
	}

	printSummary(results, time.Since(started))

	board, err := store.Leaderboard(ctx, 0)
	if err != nil {
		log.Printf("Failed to read leaderboard: %v", err)
		return
	}
	fmt.Println("\nLeaderboard:")
	for i, entry := range board {
		fmt.Printf("  %d. %-8s %6.0f\n", i+1, entry.Species, entry.Points)
	}
}

// openStore connects to Redis when configured and falls back to memory
func openStore(ctx context.Context, cfg *config.Config) (scoring.Store, *redis.Client) {
	if !cfg.Redis.Enabled() {
		log.Println("No Redis configured, keeping results in memory")
		return scoring.NewMemoryStore(scoring.SystemTime()), nil
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.URL != "" {
		parsed, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory store")
			return scoring.NewMemoryStore(scoring.SystemTime()), nil
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory store")
		_ = client.Close()
		return scoring.NewMemoryStore(scoring.SystemTime()), nil
	}

	log.Println("Using Redis for match results")
	return scoring.NewRedisStore(&scoring.RedisStoreConfig{
		Client:    client,
		ResultTTL: cfg.Redis.ResultTTL,
	}), client
}

func printSummary(results []*scoring.MatchResult, took time.Duration) {
	summary := match.Summarize(results)

	fmt.Printf("\nPlayed %d matches in %s\n", summary.Matches, took.Round(time.Millisecond))
	fmt.Printf("  Groomer wins: %d\n", summary.GroomerWins)
	fmt.Printf("  Pets groomed: %d\n", summary.PetsGroomed)
	fmt.Printf("  Extra steps:  %d\n", summary.ExtraSteps)
	for _, species := range summary.SpeciesNames() {
		fmt.Printf("  %s points: %d\n", species, summary.SpeciesPoints[species])
	}
}
