package tracing

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ p2p.Client = (*Client)(nil)

// Client 为交易平台客户端添加链路追踪的装饰器
type Client struct {
	client p2p.Client
	tracer trace.Tracer
}

// NewClient 创建一个新的带有链路追踪的客户端
func NewClient(c p2p.Client) *Client {
	return &Client{
		client: c,
		tracer: otel.Tracer("p2p-autoreply/p2p"),
	}
}

func (c *Client) ListActiveOrders(ctx context.Context, req p2p.ListOrdersReq) ([]domain.Order, error) {
	ctx, span := c.tracer.Start(ctx, "P2PClient.ListActiveOrders", trace.WithAttributes(
		attribute.Int("page", req.Page),
		attribute.Int("rows", req.Rows),
	))
	defer span.End()

	orders, err := c.client.ListActiveOrders(ctx, req)
	c.record(span, err)
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, err
}

func (c *Client) ListOrderHistory(ctx context.Context, req p2p.ListOrdersReq) ([]domain.Order, error) {
	ctx, span := c.tracer.Start(ctx, "P2PClient.ListOrderHistory", trace.WithAttributes(
		attribute.Int("page", req.Page),
		attribute.Int("rows", req.Rows),
	))
	defer span.End()

	orders, err := c.client.ListOrderHistory(ctx, req)
	c.record(span, err)
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, err
}

func (c *Client) SendChatMessage(ctx context.Context, orderNo, message string) (p2p.SendChatResp, error) {
	ctx, span := c.tracer.Start(ctx, "P2PClient.SendChatMessage", trace.WithAttributes(
		attribute.String("order.number", orderNo),
	))
	defer span.End()

	resp, err := c.client.SendChatMessage(ctx, orderNo, message)
	c.record(span, err)
	if err == nil {
		span.SetAttributes(
			attribute.Int("http.status", resp.HTTPStatus),
			attribute.String("resp.code", resp.Code),
			attribute.Bool("resp.accepted", resp.Accepted),
		)
	}
	return resp, err
}

func (c *Client) record(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
