package domain

import (
	"fmt"
	"strings"

	"gitee.com/flycash/p2p-autoreply/internal/errs"
)

// TriggerEvent 由订单状态推导出来的语义事件
type TriggerEvent string

const (
	TriggerEventOrderReceived  TriggerEvent = "order_received"  // 收到新订单
	TriggerEventPaymentMarked  TriggerEvent = "payment_marked"  // 对方已标记付款
	TriggerEventOrderCompleted TriggerEvent = "order_completed" // 订单已完成
	TriggerEventTimerBreach    TriggerEvent = "timer_breach"    // 订单超时未完结
)

func (e TriggerEvent) String() string {
	return string(e)
}

func (e TriggerEvent) IsValid() bool {
	switch e {
	case TriggerEventOrderReceived, TriggerEventPaymentMarked,
		TriggerEventOrderCompleted, TriggerEventTimerBreach:
		return true
	default:
		return false
	}
}

// TriggerRule 运营配置的自动回复规则，对引擎只读
type TriggerRule struct {
	ID              int64
	Name            string
	TriggerEvent    TriggerEvent
	TradeType       string // 为空表示不限制买卖方向
	MessageTemplate string
	DelaySeconds    int64 // 订单创建后至少经过多少秒才允许触发
	IsActive        bool
	Priority        int            // 越大越先评估
	Conditions      map[string]any // 预留的扩展过滤条件，目前引擎不解析
	Ctime           int64
	Utime           int64
}

// MatchTradeType 规则没有配置买卖方向时匹配所有订单
func (r TriggerRule) MatchTradeType(tradeType string) bool {
	if r.TradeType == "" {
		return true
	}
	return strings.EqualFold(r.TradeType, tradeType)
}

func (r TriggerRule) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: ID = %d", errs.ErrInvalidParameter, r.ID)
	}
	if !r.TriggerEvent.IsValid() {
		return fmt.Errorf("%w: TriggerEvent = %q", errs.ErrInvalidParameter, r.TriggerEvent)
	}
	if r.DelaySeconds < 0 {
		return fmt.Errorf("%w: DelaySeconds = %d", errs.ErrInvalidParameter, r.DelaySeconds)
	}
	return nil
}
