package local

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.ProcessedCache = (*ProcessedCache)(nil)

// ProcessedCache 进程内缓存，用默认过期时间
type ProcessedCache struct {
	c *ca.Cache
}

func NewProcessedCache(c *ca.Cache) *ProcessedCache {
	return &ProcessedCache{c: c}
}

func (l *ProcessedCache) Exists(_ context.Context, key domain.ProcessedKey) (bool, error) {
	_, ok := l.c.Get(cache.ProcessedCacheKey(key))
	return ok, nil
}

func (l *ProcessedCache) Set(_ context.Context, key domain.ProcessedKey) error {
	l.c.SetDefault(cache.ProcessedCacheKey(key), struct{}{})
	return nil
}
