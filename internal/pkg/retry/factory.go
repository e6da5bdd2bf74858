package retry

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

const (
	TypeFixed       = "fixed"
	TypeExponential = "exponential"
)

type Config struct {
	Type               string                    `json:"type" yaml:"type"`
	FixedInterval      *FixedIntervalConfig      `json:"fixedInterval" yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `json:"exponentialBackoff" yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	// 初始重试间隔
	InitialInterval time.Duration `json:"initialInterval" yaml:"initialInterval"`
	// 最大重试间隔
	MaxInterval time.Duration `json:"maxInterval" yaml:"maxInterval"`
	// 最大重试次数
	MaxRetries int32 `json:"maxRetries" yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32         `json:"maxRetries" yaml:"maxRetries"`
	Interval   time.Duration `json:"interval" yaml:"interval"`
}

// DefaultConfig 等待依赖启动时使用，1s 起步，最多 10 次
func DefaultConfig() Config {
	return Config{
		Type: TypeExponential,
		ExponentialBackoff: &ExponentialBackoffConfig{
			InitialInterval: time.Second,
			MaxInterval:     10 * time.Second,
			MaxRetries:      10,
		},
	}
}

func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case TypeFixed:
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("缺少 fixedInterval 配置")
		}
		return retry.NewFixedIntervalRetryStrategy(cfg.FixedInterval.Interval, cfg.FixedInterval.MaxRetries)
	case TypeExponential:
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("缺少 exponentialBackoff 配置")
		}
		c := cfg.ExponentialBackoff
		return retry.NewExponentialBackoffRetryStrategy(c.InitialInterval, c.MaxInterval, c.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}
