package scoring

import "context"

// Store persists match results and a running per-species leaderboard
type Store interface {
	Save(ctx context.Context, result *MatchResult) error
	Get(ctx context.Context, id string) (*MatchResult, error)
	ListMatches(ctx context.Context) ([]*MatchResult, error)
	ActorTotal(ctx context.Context, actorID string) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
