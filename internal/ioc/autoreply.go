package ioc

import (
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/ratelimit"
	"gitee.com/flycash/p2p-autoreply/internal/service/dispatcher"
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"gitee.com/flycash/p2p-autoreply/internal/service/event"
	"gitee.com/flycash/p2p-autoreply/internal/service/gate"
	"gitee.com/flycash/p2p-autoreply/internal/service/order"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	"github.com/redis/go-redis/v9"
	"github.com/sony/sonyflake"
)

type autoReplyConfig struct {
	LockKey        string          `yaml:"lockKey"`
	LockExpiration time.Duration   `yaml:"lockExpiration"`
	Interval       time.Duration   `yaml:"interval"`
	LoopEnabled    bool            `yaml:"loopEnabled"`
	TimerBreach    time.Duration   `yaml:"timerBreach"`
	SendLimit      sendLimitConfig `yaml:"sendLimit"`
}

type sendLimitConfig struct {
	Key      string        `yaml:"key"`
	Interval time.Duration `yaml:"interval"`
	Rate     int           `yaml:"rate"`
}

func loadAutoReplyConfig() autoReplyConfig {
	var cfg autoReplyConfig
	if econf.Get("autoreply") == nil {
		return cfg
	}
	if err := econf.UnmarshalKey("autoreply", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitOrderFetcher(client p2p.Client) order.Fetcher {
	cfg := loadP2PConfig()
	return order.NewFetcher(client, cfg.ActiveRows, cfg.HistoryRows)
}

func InitDetector() event.Detector {
	return event.NewDetector(loadAutoReplyConfig().TimerBreach)
}

// InitRateGate sendLimit.rate 小于等于 0 时不限流
func InitRateGate(rdb redis.Cmdable, sf *sonyflake.Sonyflake) *gate.RateGate {
	cfg := loadAutoReplyConfig().SendLimit
	if cfg.Rate <= 0 {
		return gate.NewRateGate(nil, "")
	}
	if cfg.Key == "" {
		cfg.Key = "autoreply:send"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return gate.NewRateGate(ratelimit.NewRedisSlidingWindowLimiter(rdb, cfg.Interval, cfg.Rate, sf), cfg.Key)
}

func InitDispatcherIDGenerator(sf *sonyflake.Sonyflake) dispatcher.IDGenerator {
	return sf
}

func InitEngineMetrics() *engine.Metrics {
	return engine.NewMetrics(nil)
}

func InitJob(e engine.Engine, dclient dlock.Client) *engine.Job {
	cfg := loadAutoReplyConfig()
	return engine.NewJob(e, dclient, cfg.LockKey, cfg.LockExpiration)
}
