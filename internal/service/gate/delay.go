package gate

import (
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
)

// DelayGate 订单创建时间未满 DelaySeconds 的规则本轮跳过
// 不记录任何状态，下一轮会重新判断
// 创建时间未知的订单无法判断，带延迟的规则一律跳过
type DelayGate struct{}

func (DelayGate) Allow(rule domain.TriggerRule, order domain.Order, now time.Time) bool {
	if rule.DelaySeconds <= 0 {
		return true
	}
	if !order.HasCreateTime() {
		return false
	}
	return order.Age(now) >= time.Duration(rule.DelaySeconds)*time.Second
}
