package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pet-groomer/internal/scoring"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	store := scoring.NewRedisStore(&scoring.RedisStoreConfig{Client: client})

	limit := 0
	if len(os.Args) > 1 {
		if limit, err = strconv.Atoi(os.Args[1]); err != nil {
			log.Fatalf("Usage: leaderboard [limit]")
		}
	}

	board, err := store.Leaderboard(ctx, limit)
	if err != nil {
		log.Fatalf("Failed to read leaderboard: %v", err)
	}

	fmt.Printf("Leaderboard (%d species):\n", len(board))
	for i, entry := range board {
		fmt.Printf("  %d. %-8s %6.0f\n", i+1, entry.Species, entry.Points)
	}

	matches, err := store.ListMatches(ctx)
	if err != nil {
		log.Fatalf("Failed to list matches: %v", err)
	}

	fmt.Printf("\nFound %d matches:\n", len(matches))
	for _, m := range matches {
		outcome := "pets escaped"
		if m.GroomerWon {
			outcome = "groomer won"
		}
		fmt.Printf("  %s: seed=%d %.1fs %s, groomed %d, extra steps %d\n",
			m.ID, m.Seed, m.Duration, outcome, len(m.Captured), m.ExtraSteps)
		for _, id := range m.ScoredActorIDs() {
			fmt.Printf("    %s (%s): %d points\n", id, m.Species[id], m.Scores[id])
		}
	}
}
