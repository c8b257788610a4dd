package state

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"pokedex/browser/internal/domain"
)

type RedisSelectionStoreTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	redisClient *redis.Client
	store       SelectionStore
	ctx         context.Context
}

func TestRedisSelectionStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisSelectionStoreTestSuite))
}

func (s *RedisSelectionStoreTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.store = NewRedisSelectionStore(s.redisClient, 30*time.Minute)
	s.ctx = context.Background()
}

func (s *RedisSelectionStoreTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.miniRedis.Close()
}

func (s *RedisSelectionStoreTestSuite) TestGetMissing() {
	selection, ok, err := s.store.Get(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Assert().False(ok)
	s.Assert().True(selection.Empty())
}

func (s *RedisSelectionStoreTestSuite) TestSetAndGet() {
	want := domain.SelectionState{
		Search: "glu",
		Tags:   []domain.CategoryTag{domain.TagFire, domain.TagFlying},
	}

	s.Require().NoError(s.store.Set(s.ctx, "session-1", want))

	got, ok, err := s.store.Get(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Assert().True(ok)
	s.Assert().Equal(want, got)

	s.Assert().True(s.miniRedis.Exists("pokedex:session:selection:session-1"))
	s.Assert().Equal(30*time.Minute, s.miniRedis.TTL("pokedex:session:selection:session-1"))
}

func (s *RedisSelectionStoreTestSuite) TestExpiry() {
	s.Require().NoError(s.store.Set(s.ctx, "session-1", domain.SelectionState{Search: "a"}))

	s.miniRedis.FastForward(31 * time.Minute)

	_, ok, err := s.store.Get(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func (s *RedisSelectionStoreTestSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, "session-1", domain.SelectionState{Search: "a"}))
	s.Require().NoError(s.store.Delete(s.ctx, "session-1"))

	_, ok, err := s.store.Get(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func (s *RedisSelectionStoreTestSuite) TestCorruptValue() {
	s.Require().NoError(s.miniRedis.Set("pokedex:session:selection:session-1", "{not json"))

	_, _, err := s.store.Get(s.ctx, "session-1")
	s.Assert().Error(err)
}

func (s *RedisSelectionStoreTestSuite) TestUnavailable() {
	s.miniRedis.Close()

	err := s.store.Set(s.ctx, "session-1", domain.SelectionState{})
	s.Assert().Error(err)
}

func TestMemorySelectionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySelectionStore()

	original := domain.SelectionState{Tags: []domain.CategoryTag{domain.TagWater}}
	if err := store.Set(ctx, "s", original); err != nil {
		t.Fatal(err)
	}
	original.Tags[0] = domain.TagFire

	got, ok, err := store.Get(ctx, "s")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if got.Tags[0] != domain.TagWater {
		t.Errorf("stored selection shares memory with caller: %v", got.Tags)
	}

	if err := store.Delete(ctx, "s"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(ctx, "s"); ok {
		t.Error("selection still present after Delete")
	}
}
