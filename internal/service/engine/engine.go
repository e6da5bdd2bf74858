package engine

import (
	"context"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/service/dispatcher"
	"gitee.com/flycash/p2p-autoreply/internal/service/event"
	"gitee.com/flycash/p2p-autoreply/internal/service/gate"
	"gitee.com/flycash/p2p-autoreply/internal/service/order"
	"gitee.com/flycash/p2p-autoreply/internal/service/rule"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=./engine.go -destination=./mocks/engine.mock.go -package=enginemocks Engine

// Engine 自动回复引擎，一次 Run 就是一轮完整的处理
type Engine interface {
	// Run 规则或者订单加载失败直接返回 error
	// 单个 (订单, 事件, 规则) 的失败只计数，不会中断本轮
	Run(ctx context.Context) (domain.RunSummary, error)
}

type engine struct {
	rules      rule.Service
	fetcher    order.Fetcher
	detector   event.Detector
	delay      gate.DelayGate
	dedup      *gate.DedupGate
	rate       *gate.RateGate
	dispatcher dispatcher.Dispatcher
	idGen      dispatcher.IDGenerator
	metrics    *Metrics
	tracer     trace.Tracer
	now        func() time.Time
	logger     *elog.Component
}

func NewEngine(
	rules rule.Service,
	fetcher order.Fetcher,
	detector event.Detector,
	dedup *gate.DedupGate,
	rate *gate.RateGate,
	d dispatcher.Dispatcher,
	idGen dispatcher.IDGenerator,
	metrics *Metrics,
) Engine {
	return &engine{
		rules:      rules,
		fetcher:    fetcher,
		detector:   detector,
		dedup:      dedup,
		rate:       rate,
		dispatcher: d,
		idGen:      idGen,
		metrics:    metrics,
		tracer:     otel.Tracer("p2p-autoreply/engine"),
		now:        time.Now,
		logger:     elog.DefaultLogger,
	}
}

func (e *engine) Run(ctx context.Context) (domain.RunSummary, error) {
	var summary domain.RunSummary
	runID, err := e.idGen.NextID()
	if err != nil {
		// runId 只用于排查问题，生成失败不影响本轮
		e.logger.Warn("生成 runId 失败", elog.FieldErr(err))
	}
	summary.RunID = runID

	ctx, span := e.tracer.Start(ctx, "Engine.Run",
		trace.WithAttributes(attribute.Int64("run.id", int64(runID))))
	defer span.End()

	logger := e.logger.With(elog.Any("runId", runID))
	logger.Info("开始自动回复")

	rules, err := e.rules.ListActive(ctx)
	if err != nil {
		logger.Error("加载规则失败", elog.FieldErr(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}
	summary.RulesActive = len(rules)
	if len(rules) == 0 {
		logger.Info("没有启用的规则，跳过本轮")
		return summary, nil
	}

	orders, err := e.fetcher.Fetch(ctx)
	if err != nil {
		logger.Error("拉取订单失败", elog.FieldErr(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}
	summary.OrdersChecked = len(orders)

	now := e.now()
	var localErr error
	cancelErr := e.loop(ctx, rules, orders, now, &summary, &localErr)
	e.report(span, logger, summary, localErr, cancelErr)
	return summary, cancelErr
}

// loop 遍历 (订单, 事件, 规则)，ctx 被取消时返回 ctx.Err()
func (e *engine) loop(ctx context.Context, rules []domain.TriggerRule, orders []domain.Order,
	now time.Time, summary *domain.RunSummary, localErr *error,
) error {
	for _, o := range orders {
		for _, ev := range e.detector.Detect(o, now) {
			for _, r := range rule.Match(rules, o, ev) {
				if ctx.Err() != nil {
					// 已经处理过的不回滚，剩下的留给下一轮
					return ctx.Err()
				}
				if err := e.handle(ctx, r, o, ev, now, summary); err != nil {
					*localErr = multierror.Append(*localErr, err)
				}
			}
		}
	}
	return nil
}

// report 中途被取消也要把已经处理的部分记下来
func (e *engine) report(span trace.Span, logger *elog.Component, summary domain.RunSummary,
	localErr, cancelErr error,
) {
	span.SetAttributes(
		attribute.Int("summary.processed", summary.Processed),
		attribute.Int("summary.errors", summary.Errors),
		attribute.Int("summary.ordersChecked", summary.OrdersChecked),
	)
	fields := []elog.Field{
		elog.Int("processed", summary.Processed),
		elog.Int("errors", summary.Errors),
		elog.Int("ordersChecked", summary.OrdersChecked),
		elog.Int("rulesActive", summary.RulesActive),
		elog.Int("skippedDelay", summary.SkippedDelay),
		elog.Int("skippedDuplicate", summary.SkippedDuplicate),
		elog.Int("skippedRateLimit", summary.SkippedRateLimit),
	}
	if localErr != nil {
		fields = append(fields, elog.Any("localErr", localErr.Error()))
	}
	switch {
	case cancelErr != nil:
		span.RecordError(cancelErr)
		span.SetStatus(codes.Error, cancelErr.Error())
		logger.Warn("自动回复被中断，剩余的留给下一轮", append(fields, elog.FieldErr(cancelErr))...)
	case localErr != nil:
		logger.Warn("自动回复完成，部分处理失败", fields...)
	default:
		logger.Info("自动回复完成", fields...)
	}
}

// handle 处理单个 (规则, 订单, 事件)，返回的 error 只用于汇总日志
func (e *engine) handle(ctx context.Context, r domain.TriggerRule, o domain.Order,
	ev domain.TriggerEvent, now time.Time, summary *domain.RunSummary,
) error {
	if !e.delay.Allow(r, o, now) {
		summary.SkippedDelay++
		e.metrics.observe(ev, statusSkippedDelay)
		return nil
	}
	key := domain.ProcessedKey{OrderNumber: o.OrderNumber, TriggerEvent: ev, RuleID: r.ID}
	ok, err := e.dedup.Allow(ctx, key)
	if err != nil {
		summary.Errors++
		e.metrics.observe(ev, statusError)
		return err
	}
	if !ok {
		summary.SkippedDuplicate++
		e.metrics.observe(ev, statusSkippedDuplicate)
		return nil
	}
	if !e.rate.Allow(ctx) {
		summary.SkippedRateLimit++
		e.metrics.observe(ev, statusSkippedRateLimit)
		return nil
	}

	log, err := e.dispatcher.Dispatch(ctx, r, o, ev)
	switch log.Status {
	case domain.ExecutionStatusSent:
		summary.Processed++
	default:
		summary.Errors++
	}
	e.metrics.observe(ev, log.Status.String())
	if err != nil {
		// 消息已经发出去但是落库失败，也要算一次错误
		if log.Status == domain.ExecutionStatusSent {
			summary.Errors++
		}
		return err
	}
	return nil
}
