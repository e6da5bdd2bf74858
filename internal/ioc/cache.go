package ioc

import (
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"gitee.com/flycash/p2p-autoreply/internal/repository/cache/local"
	redisCache "gitee.com/flycash/p2p-autoreply/internal/repository/cache/redis"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"github.com/gotomicro/ego/core/econf"
	ca "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type cacheConfig struct {
	LocalExpiration time.Duration `yaml:"localExpiration"`
	RedisExpiration time.Duration `yaml:"redisExpiration"`
}

func loadCacheConfig() cacheConfig {
	cfg := cacheConfig{
		LocalExpiration: 10 * time.Minute,
		RedisExpiration: 24 * time.Hour,
	}
	if econf.Get("autoreply.cache") != nil {
		if err := econf.UnmarshalKey("autoreply.cache", &cfg); err != nil {
			panic(err)
		}
	}
	return cfg
}

func InitGoCache() *ca.Cache {
	cfg := loadCacheConfig()
	return ca.New(cfg.LocalExpiration, 2*cfg.LocalExpiration)
}

// InitProcessedMarkerRepository 本地缓存和 redis 缓存实现的是同一个接口，这里手动组装
func InitProcessedMarkerRepository(d dao.ProcessedMarkerDAO, c *ca.Cache, rdb redis.Cmdable) repository.ProcessedMarkerRepository {
	return repository.NewProcessedMarkerRepository(d,
		local.NewProcessedCache(c),
		redisCache.NewProcessedCache(rdb, loadCacheConfig().RedisExpiration))
}
