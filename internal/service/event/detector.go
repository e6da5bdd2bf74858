package event

import (
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
)

// DefaultTimerBreach 订单存活超过这个时长还没完结就触发 timer_breach
const DefaultTimerBreach = 15 * time.Minute

// Detector 根据订单当前状态推导语义事件，纯函数，不做任何 IO
type Detector struct {
	timerBreach time.Duration
}

func NewDetector(timerBreach time.Duration) Detector {
	if timerBreach <= 0 {
		timerBreach = DefaultTimerBreach
	}
	return Detector{timerBreach: timerBreach}
}

// Detect 各个事件互相独立，一个订单可能同时满足多个事件
// 返回的顺序固定为 order_received, payment_marked, order_completed, timer_breach
func (d Detector) Detect(order domain.Order, now time.Time) []domain.TriggerEvent {
	events := make([]domain.TriggerEvent, 0, 4)
	status := order.Status
	if status != domain.OrderStatusCompleted &&
		status != domain.OrderStatusCancelled &&
		status != domain.OrderStatusDisputed {
		events = append(events, domain.TriggerEventOrderReceived)
	}
	if status == domain.OrderStatusPaid {
		events = append(events, domain.TriggerEventPaymentMarked)
	}
	if status == domain.OrderStatusCompleted {
		events = append(events, domain.TriggerEventOrderCompleted)
	}
	// 创建时间未知不能判断超时
	if order.HasCreateTime() && order.Age(now) > d.timerBreach && !order.IsFinished() {
		events = append(events, domain.TriggerEventTimerBreach)
	}
	return events
}

// Detect 使用默认的超时阈值
func Detect(order domain.Order, now time.Time) []domain.TriggerEvent {
	return NewDetector(DefaultTimerBreach).Detect(order, now)
}
