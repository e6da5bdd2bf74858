package redis

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

var _ cache.ProcessedCache = (*ProcessedCache)(nil)

type ProcessedCache struct {
	rdb        redis.Cmdable
	expiration time.Duration
}

// NewProcessedCache 订单结束之后不会再被拉取，缓存不需要永久保存
func NewProcessedCache(rdb redis.Cmdable, expiration time.Duration) *ProcessedCache {
	return &ProcessedCache{
		rdb:        rdb,
		expiration: expiration,
	}
}

func (c *ProcessedCache) Exists(ctx context.Context, key domain.ProcessedKey) (bool, error) {
	n, err := c.rdb.Exists(ctx, cache.ProcessedCacheKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check processed marker in redis %w", err)
	}
	return n > 0, nil
}

func (c *ProcessedCache) Set(ctx context.Context, key domain.ProcessedKey) error {
	return c.rdb.Set(ctx, cache.ProcessedCacheKey(key), "1", c.expiration).Err()
}
