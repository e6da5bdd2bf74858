package p2p

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./client.go -destination=./mocks/client.mock.go -package=p2pmocks Client

// Client 交易平台 API
type Client interface {
	// ListActiveOrders 查询进行中的订单
	ListActiveOrders(ctx context.Context, req ListOrdersReq) ([]domain.Order, error)
	// ListOrderHistory 查询历史订单
	ListOrderHistory(ctx context.Context, req ListOrdersReq) ([]domain.Order, error)
	// SendChatMessage 向订单聊天窗口发送文本消息
	// 只有 HTTP 调用本身失败时才返回 error，业务失败通过 SendChatResp 判断
	SendChatMessage(ctx context.Context, orderNo, message string) (SendChatResp, error)
}

// Paths 交易平台（代理）上的接口路径
type Paths struct {
	ListOrders   string `yaml:"listOrders"`
	OrderHistory string `yaml:"orderHistory"`
	SendChat     string `yaml:"sendChat"`
}

// Credentials 调用交易平台代理必须携带的凭证
type Credentials struct {
	APIKey     string `yaml:"apiKey"`
	APISecret  string `yaml:"apiSecret"`
	ProxyToken string `yaml:"proxyToken"`
}

func (c Credentials) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: apiKey", errs.ErrMissingCredentials)
	}
	if c.APISecret == "" {
		return fmt.Errorf("%w: apiSecret", errs.ErrMissingCredentials)
	}
	if c.ProxyToken == "" {
		return fmt.Errorf("%w: proxyToken", errs.ErrMissingCredentials)
	}
	return nil
}

func (c Credentials) headers() map[string]string {
	return map[string]string{
		"X-Api-Key":     c.APIKey,
		"X-Api-Secret":  c.APISecret,
		"X-Proxy-Token": c.ProxyToken,
		"Content-Type":  "application/json",
	}
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient 基于 ehttp 的实现
type HTTPClient struct {
	client *ehttp.Component
	cred   Credentials
	paths  Paths
}

// NewHTTPClient 凭证不完整的时候直接返回错误，不会发出任何请求
func NewHTTPClient(client *ehttp.Component, cred Credentials, paths Paths) (*HTTPClient, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if paths.ListOrders == "" {
		paths.ListOrders = "/orders/list"
	}
	if paths.OrderHistory == "" {
		paths.OrderHistory = "/orders/history"
	}
	if paths.SendChat == "" {
		paths.SendChat = "/chat/send"
	}
	return &HTTPClient{client: client, cred: cred, paths: paths}, nil
}

func (c *HTTPClient) ListActiveOrders(ctx context.Context, req ListOrdersReq) ([]domain.Order, error) {
	return c.listOrders(ctx, c.paths.ListOrders, req)
}

func (c *HTTPClient) ListOrderHistory(ctx context.Context, req ListOrdersReq) ([]domain.Order, error) {
	return c.listOrders(ctx, c.paths.OrderHistory, req)
}

func (c *HTTPClient) listOrders(ctx context.Context, path string, req ListOrdersReq) ([]domain.Order, error) {
	env, status, err := c.post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	if !isHTTPSuccess(status) {
		return nil, fmt.Errorf("%s 响应异常: http=%d message=%s", path, status, env.Message)
	}
	if !env.ok() {
		return nil, fmt.Errorf("%s 响应异常: code=%s message=%s", path, env.code(), env.Message)
	}
	var orders []Order
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err = json.Unmarshal(env.Data, &orders); err != nil {
			return nil, errors.Wrapf(err, "%s 解析订单失败", path)
		}
	}
	return slice.Map(orders, func(_ int, src Order) domain.Order {
		return src.toDomain()
	}), nil
}

func (c *HTTPClient) SendChatMessage(ctx context.Context, orderNo, message string) (SendChatResp, error) {
	env, status, err := c.post(ctx, c.paths.SendChat, sendChatReq{
		OrderNo:         orderNo,
		Message:         message,
		ChatMessageType: "text",
	})
	if err != nil {
		return SendChatResp{}, err
	}
	return SendChatResp{
		HTTPStatus: status,
		Code:       env.code(),
		Message:    env.Message,
		Accepted:   isHTTPSuccess(status) && env.ok(),
	}, nil
}

func isHTTPSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (envelope, int, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(c.cred.headers()).
		SetBody(body).
		Post(path)
	if err != nil {
		return envelope{}, 0, errors.Wrapf(err, "请求交易平台 %s 失败", path)
	}
	var env envelope
	if raw := resp.Body(); len(raw) > 0 {
		// 非 JSON 的错误页面不影响按 HTTP 状态判断
		_ = json.Unmarshal(raw, &env)
	}
	return env, resp.StatusCode(), nil
}
