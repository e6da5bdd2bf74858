package gate

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/elog"
)

// RateGate 限制聊天消息的发送频率，避免触发交易平台的限流
// 被限流的 (订单, 事件, 规则) 不写任何记录，下一轮重新评估
type RateGate struct {
	limiter ratelimit.Limiter
	key     string
	logger  *elog.Component
}

// NewRateGate limiter 为 nil 时不限流
func NewRateGate(limiter ratelimit.Limiter, key string) *RateGate {
	return &RateGate{
		limiter: limiter,
		key:     key,
		logger:  elog.DefaultLogger,
	}
}

// Allow 限流器出错时放行，重复发送仍然由 DedupGate 保证
func (g *RateGate) Allow(ctx context.Context) bool {
	if g == nil || g.limiter == nil {
		return true
	}
	limited, err := g.limiter.Limit(ctx, g.key)
	if err != nil {
		g.logger.Warn("限流器异常，直接放行", elog.String("key", g.key), elog.FieldErr(err))
		return true
	}
	return !limited
}
