package p2p

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
)

// SuccessCode 交易平台约定的成功响应码
const SuccessCode = "000000"

// successCodes 部分网关会把响应码写成数字 0 或 200
var successCodes = map[string]struct{}{
	SuccessCode: {},
	"0":         {},
	"200":       {},
}

// RawStatus 兼容数字和字符串两种形态的订单状态
type RawStatus string

func (r *RawStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawStatus(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RawStatus(n.String())
	return nil
}

// Order 交易平台返回的订单结构
type Order struct {
	OrderNumber         string    `json:"orderNumber"`
	AdvNo               string    `json:"advNo"`
	TradeType           string    `json:"tradeType"`
	Asset               string    `json:"asset"`
	Fiat                string    `json:"fiat"`
	TotalPrice          Decimal   `json:"totalPrice"`
	Amount              Decimal   `json:"amount"`
	UnitPrice           Decimal   `json:"unitPrice"`
	OrderStatus         RawStatus `json:"orderStatus"`
	CreateTime          int64     `json:"createTime"`
	CounterPartNickName string    `json:"counterPartNickName"`
	PayMethodName       string    `json:"payMethodName"`
}

func (o Order) toDomain() domain.Order {
	var createTime time.Time
	if o.CreateTime > 0 {
		createTime = time.UnixMilli(o.CreateTime)
	}
	return domain.Order{
		OrderNumber:  o.OrderNumber,
		AdvNo:        o.AdvNo,
		TradeType:    strings.ToUpper(o.TradeType),
		Asset:        o.Asset,
		Fiat:         o.Fiat,
		TotalPrice:   string(o.TotalPrice),
		Amount:       string(o.Amount),
		UnitPrice:    string(o.UnitPrice),
		RawStatus:    string(o.OrderStatus),
		Status:       domain.ParseOrderStatus(string(o.OrderStatus)),
		CreateTime:   createTime,
		Counterparty: o.CounterPartNickName,
		PayMethod:    o.PayMethodName,
	}
}

// Decimal 金额字段有时是字符串有时是数字，统一按原样保存成字符串
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	var r RawStatus
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	*d = Decimal(r)
	return nil
}

// ListOrdersReq 分页查询
type ListOrdersReq struct {
	Page int `json:"page"`
	Rows int `json:"rows"`
}

type sendChatReq struct {
	OrderNo         string `json:"orderNo"`
	Message         string `json:"message"`
	ChatMessageType string `json:"chatMessageType"`
}

// envelope 交易平台统一的响应外壳
type envelope struct {
	Code    *RawStatus      `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Success *bool           `json:"success"`
}

// ok code 和 success 都没有时只看 HTTP 状态
func (e envelope) ok() bool {
	if e.Success != nil && *e.Success {
		return true
	}
	if e.Code == nil {
		return e.Success == nil
	}
	_, ok := successCodes[string(*e.Code)]
	return ok
}

func (e envelope) code() string {
	if e.Code == nil {
		return ""
	}
	return string(*e.Code)
}

// SendChatResp 发送聊天消息的结果
type SendChatResp struct {
	HTTPStatus int
	Code       string
	Message    string
	// Accepted HTTP 2xx 并且响应码表示成功
	Accepted bool
}

func (r SendChatResp) String() string {
	return "http=" + strconv.Itoa(r.HTTPStatus) + " code=" + r.Code + " message=" + r.Message
}
