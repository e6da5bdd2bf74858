package ratelimit

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/sonyflake"
)

var (
	//go:embed lua/slide_window.lua
	slidingWindowScript string

	_ Limiter = (*RedisSlidingWindowLimiter)(nil)
)

type RedisSlidingWindowLimiter struct {
	cmd       redis.Cmdable
	interval  time.Duration
	rate      int
	keyPrefix string
	idGen     *sonyflake.Sonyflake
}

// NewRedisSlidingWindowLimiter interval 内最多放行 rate 次
func NewRedisSlidingWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int, idGen *sonyflake.Sonyflake) *RedisSlidingWindowLimiter {
	return &RedisSlidingWindowLimiter{
		cmd:       cmd,
		interval:  interval,
		rate:      rate,
		keyPrefix: "ratelimit:",
		idGen:     idGen,
	}
}

func (r *RedisSlidingWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	// 同一毫秒内可能有多个请求，成员需要唯一
	member, err := r.idGen.NextID()
	if err != nil {
		return false, fmt.Errorf("生成限流成员ID失败 %w", err)
	}
	return r.cmd.Eval(ctx, slidingWindowScript,
		[]string{r.countKey(key)},
		r.interval.Milliseconds(),
		r.rate,
		time.Now().UnixMilli(),
		member,
	).Bool()
}

func (r *RedisSlidingWindowLimiter) countKey(key string) string {
	return fmt.Sprintf("%scount:%s", r.keyPrefix, key)
}
