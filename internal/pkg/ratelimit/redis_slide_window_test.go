//go:build e2e

package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedisSlidingWindowLimiter(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSlidingWindowLimiterTestSuite))
}

type RedisSlidingWindowLimiterTestSuite struct {
	suite.Suite
	rdb   redis.Cmdable
	idGen *sonyflake.Sonyflake
}

func (s *RedisSlidingWindowLimiterTestSuite) SetupSuite() {
	s.rdb = redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	var err error
	s.idGen, err = sonyflake.New(sonyflake.Settings{
		MachineID: func() (uint16, error) { return 1, nil },
	})
	s.Require().NoError(err)
}

func (s *RedisSlidingWindowLimiterTestSuite) key(name string) string {
	return fmt.Sprintf("test:%s:%d", name, time.Now().UnixNano())
}

func (s *RedisSlidingWindowLimiterTestSuite) TestLimit() {
	t := s.T()
	ctx := context.Background()
	limiter := NewRedisSlidingWindowLimiter(s.rdb, 200*time.Millisecond, 3, s.idGen)
	key := s.key("limit")

	for i := 0; i < 3; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		require.False(t, limited)
	}
	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	require.True(t, limited)

	// 窗口滑过之后恢复
	time.Sleep(250 * time.Millisecond)
	limited, err = limiter.Limit(ctx, key)
	require.NoError(t, err)
	require.False(t, limited)
}
