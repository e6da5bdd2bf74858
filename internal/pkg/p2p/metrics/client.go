// Package metrics 为交易平台客户端添加指标收集的装饰器
package metrics

import (
	"context"
	"strconv"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	"github.com/prometheus/client_golang/prometheus"
)

var _ p2p.Client = (*Client)(nil)

// Client 为交易平台客户端添加指标收集的装饰器
type Client struct {
	client          p2p.Client
	durationSummary *prometheus.SummaryVec
	callCounter     *prometheus.CounterVec
}

// NewClient reg 为 nil 时注册到默认的 Registerer
func NewClient(c p2p.Client, reg prometheus.Registerer) *Client {
	durationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "p2p_api_call_duration_seconds",
			Help:       "交易平台接口调用耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"api", "status"},
	)

	callCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "p2p_api_call_total",
			Help: "交易平台接口调用次数",
		},
		[]string{"api", "status"},
	)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(durationSummary, callCounter)

	return &Client{
		client:          c,
		durationSummary: durationSummary,
		callCounter:     callCounter,
	}
}

func (c *Client) ListActiveOrders(ctx context.Context, req p2p.ListOrdersReq) ([]domain.Order, error) {
	startTime := time.Now()
	orders, err := c.client.ListActiveOrders(ctx, req)
	c.observe("listOrders", startTime, errStatus(err))
	return orders, err
}

func (c *Client) ListOrderHistory(ctx context.Context, req p2p.ListOrdersReq) ([]domain.Order, error) {
	startTime := time.Now()
	orders, err := c.client.ListOrderHistory(ctx, req)
	c.observe("listUserOrderHistory", startTime, errStatus(err))
	return orders, err
}

func (c *Client) SendChatMessage(ctx context.Context, orderNo, message string) (p2p.SendChatResp, error) {
	startTime := time.Now()
	resp, err := c.client.SendChatMessage(ctx, orderNo, message)
	status := errStatus(err)
	if err == nil {
		status = strconv.Itoa(resp.HTTPStatus)
		if !resp.Accepted {
			status = "rejected"
		}
	}
	c.observe("sendChatMessage", startTime, status)
	return resp, err
}

func (c *Client) observe(api string, startTime time.Time, status string) {
	c.callCounter.WithLabelValues(api, status).Inc()
	c.durationSummary.WithLabelValues(api, status).Observe(time.Since(startTime).Seconds())
}

func errStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
