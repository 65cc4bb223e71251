package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	matchKeyPrefix  = "match:"
	matchIndexKey   = "matches"
	actorTotalsKey  = "scores:actors"
	speciesBoardKey = "leaderboard:species"
)

// RedisStoreConfig holds configuration for the Redis store
type RedisStoreConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// ResultTTL expires stored match results; zero keeps them
	ResultTTL time.Duration
}

// redisStore implements Store using Redis
type redisStore struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	resultTTL    time.Duration
}

// NewRedisStore creates a new Redis-backed score store
func NewRedisStore(cfg *RedisStoreConfig) Store {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = SystemTime()
	}

	return &redisStore{
		client:       cfg.Client,
		timeProvider: tp,
		resultTTL:    cfg.ResultTTL,
	}
}

// Save writes the result, bumps each actor's running total and the species
// leaderboard in one transaction
func (r *redisStore) Save(ctx context.Context, result *MatchResult) error {
	if result == nil {
		return apperr.InvalidArgument("match result cannot be nil")
	}
	if result.ID == "" {
		return apperr.InvalidArgument("match result ID cannot be empty")
	}
	if result.RecordedAt.IsZero() {
		result.RecordedAt = r.timeProvider.Now()
	}

	data, err := json.Marshal(result)
	if err != nil {
		return apperr.Wrap(err, "failed to serialize match result")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, matchKeyPrefix+result.ID, string(data), r.resultTTL)
	pipe.SAdd(ctx, matchIndexKey, result.ID)

	// Sorted so the command order is stable
	for _, id := range result.ScoredActorIDs() {
		pipe.HIncrBy(ctx, actorTotalsKey, id, int64(result.Scores[id]))
	}
	speciesScores := result.SpeciesScores()
	species := make([]string, 0, len(speciesScores))
	for s := range speciesScores {
		species = append(species, s)
	}
	sort.Strings(species)
	for _, s := range species {
		pipe.ZIncrBy(ctx, speciesBoardKey, float64(speciesScores[s]), s)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save match result")
	}

	return nil
}

// Get retrieves a match result by ID
func (r *redisStore) Get(ctx context.Context, id string) (*MatchResult, error) {
	data, err := r.client.Get(ctx, matchKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("match %s not found", id)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get match result")
	}

	var result MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, apperr.Wrap(err, "failed to deserialize match result")
	}

	return &result, nil
}

// ListMatches fetches every indexed match in parallel, ordered by ID
func (r *redisStore) ListMatches(ctx context.Context) ([]*MatchResult, error) {
	ids, err := r.client.SMembers(ctx, matchIndexKey).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list matches")
	}

	results := make([]*MatchResult, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			result, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get match %s: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

// ActorTotal returns an actor's points across all saved matches
func (r *redisStore) ActorTotal(ctx context.Context, actorID string) (int, error) {
	raw, err := r.client.HGet(ctx, actorTotalsKey, actorID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get actor total")
	}

	total, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Wrapf(err, "actor %s has a non-numeric total", actorID)
	}
	return total, nil
}

// Leaderboard returns the species with the most points first
func (r *redisStore) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	rows, err := r.client.ZRevRangeWithScores(ctx, speciesBoardKey, 0, stop).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to read leaderboard")
	}

	out := make([]LeaderboardEntry, 0, len(rows))
	for _, z := range rows {
		out = append(out, LeaderboardEntry{
			Species: fmt.Sprint(z.Member),
			Points:  z.Score,
		})
	}
	return out, nil
}
