package scoring_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/scoring"
	mockscoring "github.com/KirkDiggler/pet-groomer/internal/scoring/mock"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockscoring.MockTimeProvider
	store        scoring.Store
	now          time.Time
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockscoring.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.store = scoring.NewRedisStore(&scoring.RedisStoreConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) newResult() *scoring.MatchResult {
	return &scoring.MatchResult{
		ID:       "m1",
		Seed:     42,
		Duration: 90,
		Species:  map[string]string{"cat-1": "cat", "dog-1": "dog", "groomer-1": "groomer"},
		Scores:   map[string]int{"dog-1": 60, "cat-1": 30},
		Hits:     map[string]int{"dog-1": 2, "cat-1": 1},
		Captured: []string{"cat-1"},
	}
}

func (s *RedisStoreTestSuite) TestSave() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now)

	result := s.newResult()
	expected := *result
	expected.RecordedAt = s.now
	data, err := json.Marshal(&expected)
	s.Require().NoError(err)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("match:m1", string(data), 0).SetVal("OK")
	s.mock.ExpectSAdd("matches", "m1").SetVal(1)
	s.mock.ExpectHIncrBy("scores:actors", "cat-1", 30).SetVal(30)
	s.mock.ExpectHIncrBy("scores:actors", "dog-1", 60).SetVal(60)
	s.mock.ExpectZIncrBy("leaderboard:species", 30, "cat").SetVal(30)
	s.mock.ExpectZIncrBy("leaderboard:species", 60, "dog").SetVal(60)
	s.mock.ExpectTxPipelineExec()

	err = s.store.Save(ctx, result)
	s.NoError(err)
	s.Equal(s.now, result.RecordedAt)
}

func (s *RedisStoreTestSuite) TestSave_InputValidation() {
	ctx := context.Background()

	s.True(apperr.IsInvalidArgument(s.store.Save(ctx, nil)))
	s.True(apperr.IsInvalidArgument(s.store.Save(ctx, &scoring.MatchResult{})))
}

func (s *RedisStoreTestSuite) TestGet() {
	ctx := context.Background()
	result := s.newResult()
	result.RecordedAt = s.now
	data, err := json.Marshal(result)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("match:m1").SetVal(string(data))

	got, err := s.store.Get(ctx, "m1")
	s.Require().NoError(err)
	s.Equal(result, got)

	// Missing
	s.mock.ExpectGet("match:m2").RedisNil()

	_, err = s.store.Get(ctx, "m2")
	s.True(apperr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("match:m1").SetErr(errors.New("redis error"))

	_, err = s.store.Get(ctx, "m1")
	s.Error(err)
	s.Equal(apperr.CodeUnavailable, apperr.GetCode(err))
}

func (s *RedisStoreTestSuite) TestListMatches() {
	ctx := context.Background()
	result := s.newResult()
	result.RecordedAt = s.now
	data, err := json.Marshal(result)
	s.Require().NoError(err)

	s.mock.ExpectSMembers("matches").SetVal([]string{"m1"})
	s.mock.ExpectGet("match:m1").SetVal(string(data))

	all, err := s.store.ListMatches(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("m1", all[0].ID)

	// A missing member fails the whole listing
	s.mock.ExpectSMembers("matches").SetVal([]string{"gone"})
	s.mock.ExpectGet("match:gone").RedisNil()

	_, err = s.store.ListMatches(ctx)
	s.Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisStoreTestSuite) TestActorTotal() {
	ctx := context.Background()

	s.mock.ExpectHGet("scores:actors", "dog-1").SetVal("150")
	total, err := s.store.ActorTotal(ctx, "dog-1")
	s.NoError(err)
	s.Equal(150, total)

	s.mock.ExpectHGet("scores:actors", "nobody").RedisNil()
	total, err = s.store.ActorTotal(ctx, "nobody")
	s.NoError(err)
	s.Zero(total)
}

func (s *RedisStoreTestSuite) TestLeaderboard() {
	ctx := context.Background()

	s.mock.ExpectZRevRangeWithScores("leaderboard:species", 0, 1).SetVal([]redis.Z{
		{Member: "dog", Score: 240},
		{Member: "cat", Score: 90},
	})

	board, err := s.store.Leaderboard(ctx, 2)
	s.Require().NoError(err)
	s.Equal([]scoring.LeaderboardEntry{
		{Species: "dog", Points: 240},
		{Species: "cat", Points: 90},
	}, board)
}
