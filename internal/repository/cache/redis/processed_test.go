//go:build e2e

package redis

import (
	"testing"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

func TestProcessedCacheSuite(t *testing.T) {
	suite.Run(t, new(ProcessedCacheTestSuite))
}

type ProcessedCacheTestSuite struct {
	suite.Suite
	client *redis.Client
	cache  *ProcessedCache
}

func (s *ProcessedCacheTestSuite) SetupSuite() {
	s.client = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	s.cache = NewProcessedCache(s.client, time.Minute)
}

func (s *ProcessedCacheTestSuite) TearDownSuite() {
	s.client.FlushDB(s.T().Context())
	s.client.Close()
}

func (s *ProcessedCacheTestSuite) SetupTest() {
	s.client.FlushDB(s.T().Context())
}

func (s *ProcessedCacheTestSuite) TestSetAndExists() {
	key := domain.ProcessedKey{OrderNumber: "1001", TriggerEvent: domain.TriggerEventPaymentMarked, RuleID: 3}

	ok, err := s.cache.Exists(s.T().Context(), key)
	s.NoError(err)
	s.False(ok)

	s.NoError(s.cache.Set(s.T().Context(), key))

	ok, err = s.cache.Exists(s.T().Context(), key)
	s.NoError(err)
	s.True(ok)

	ttl, err := s.client.TTL(s.T().Context(), "autoreply:processed:1001:payment_marked:3").Result()
	s.NoError(err)
	s.True(ttl > 0 && ttl <= time.Minute)
}
