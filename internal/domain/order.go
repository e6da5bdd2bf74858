package domain

import (
	"strconv"
	"strings"
	"time"
)

// OrderStatus 归一化之后的订单状态
// 供应商的状态字段有时是数字，有时是字符串，只在 ParseOrderStatus 里面处理
type OrderStatus uint8

const (
	OrderStatusUnknown OrderStatus = iota
	OrderStatusUnpaid
	OrderStatusPaid
	OrderStatusCompleted
	OrderStatusCancelled
	OrderStatusDisputed
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusUnpaid:
		return "UNPAID"
	case OrderStatusPaid:
		return "PAID"
	case OrderStatusCompleted:
		return "COMPLETED"
	case OrderStatusCancelled:
		return "CANCELLED"
	case OrderStatusDisputed:
		return "DISPUTED"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderStatus 把供应商原始的状态值转换成 OrderStatus
// 数字编码：1 待付款，2/3 已付款或付款中，4/5 已完成，6/7 已取消，8/9 申诉中
func ParseOrderStatus(raw string) OrderStatus {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return OrderStatusUnknown
	}
	if code, err := strconv.Atoi(raw); err == nil {
		return parseStatusCode(code)
	}
	switch {
	case strings.Contains(raw, "COMPLETED"):
		return OrderStatusCompleted
	case strings.Contains(raw, "CANCEL"):
		return OrderStatusCancelled
	case strings.Contains(raw, "APPEAL"), strings.Contains(raw, "DISPUTE"):
		return OrderStatusDisputed
	// UNPAID 也包含 PAID，必须先判断
	case strings.Contains(raw, "UNPAID"):
		return OrderStatusUnpaid
	case strings.Contains(raw, "PAID"), strings.Contains(raw, "PAYING"), strings.Contains(raw, "PAYED"):
		return OrderStatusPaid
	case strings.Contains(raw, "TRADING"), strings.Contains(raw, "PENDING"):
		return OrderStatusUnpaid
	default:
		return OrderStatusUnknown
	}
}

func parseStatusCode(code int) OrderStatus {
	switch code {
	case 1:
		return OrderStatusUnpaid
	case 2, 3:
		return OrderStatusPaid
	case 4, 5:
		return OrderStatusCompleted
	case 6, 7:
		return OrderStatusCancelled
	case 8, 9:
		return OrderStatusDisputed
	default:
		return OrderStatusUnknown
	}
}

// Order 交易平台订单快照，每次运行都重新拉取
type Order struct {
	OrderNumber  string
	AdvNo        string
	TradeType    string // BUY / SELL
	Asset        string
	Fiat         string
	TotalPrice   string
	Amount       string
	UnitPrice    string
	RawStatus    string
	Status       OrderStatus
	CreateTime   time.Time
	Counterparty string
	PayMethod    string
}

// HasCreateTime 交易平台没有返回 createTime 时订单年龄未知
func (o Order) HasCreateTime() bool {
	return !o.CreateTime.IsZero()
}

// Age 订单到 now 为止的存活时间，创建时间未知时返回 0
func (o Order) Age(now time.Time) time.Duration {
	if !o.HasCreateTime() {
		return 0
	}
	return now.Sub(o.CreateTime)
}

func (o Order) IsFinished() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
