package template

import (
	"strings"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
)

// 字段缺失时使用的默认值
const (
	DefaultAsset        = "USDT"
	DefaultFiat         = "INR"
	DefaultCounterparty = "Trader"
	DefaultPayMethod    = "N/A"
)

// Render 替换消息模板里面的 {{占位符}}
// 不认识的占位符原样保留，替换结果不会再次展开
func Render(tmpl string, order domain.Order) string {
	r := strings.NewReplacer(
		"{{orderNumber}}", order.OrderNumber,
		"{{amount}}", order.Amount,
		"{{totalPrice}}", order.TotalPrice,
		"{{unitPrice}}", order.UnitPrice,
		"{{asset}}", orDefault(order.Asset, DefaultAsset),
		"{{fiat}}", orDefault(order.Fiat, DefaultFiat),
		"{{counterparty}}", orDefault(order.Counterparty, DefaultCounterparty),
		"{{payMethod}}", orDefault(order.PayMethod, DefaultPayMethod),
	)
	return r.Replace(tmpl)
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
