package dispatcher

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"gitee.com/flycash/p2p-autoreply/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

//go:generate mockgen -source=./dispatcher.go -destination=./mocks/dispatcher.mock.go -package=dispatchermocks Dispatcher

// Dispatcher 渲染模板，发送聊天消息并记录结果
type Dispatcher interface {
	// Dispatch 发送失败不会返回 error，而是返回状态为 failed 的执行记录
	// 只有写存储失败才返回 error
	Dispatch(ctx context.Context, rule domain.TriggerRule, order domain.Order, event domain.TriggerEvent) (domain.ExecutionLog, error)
}

// IDGenerator sonyflake.Sonyflake 满足这个接口
type IDGenerator interface {
	NextID() (uint64, error)
}

type dispatcher struct {
	client  p2p.Client
	markers repository.ProcessedMarkerRepository
	logs    repository.ExecutionLogRepository
	idGen   IDGenerator
	logger  *elog.Component
}

func NewDispatcher(
	client p2p.Client,
	markers repository.ProcessedMarkerRepository,
	logs repository.ExecutionLogRepository,
	idGen IDGenerator,
) Dispatcher {
	return &dispatcher{
		client:  client,
		markers: markers,
		logs:    logs,
		idGen:   idGen,
		logger:  elog.DefaultLogger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, rule domain.TriggerRule,
	order domain.Order, event domain.TriggerEvent,
) (domain.ExecutionLog, error) {
	message := template.Render(rule.MessageTemplate, order)
	entry := domain.ExecutionLog{
		RuleID:       rule.ID,
		OrderNumber:  order.OrderNumber,
		TriggerEvent: event,
		Message:      message,
	}

	resp, err := d.client.SendChatMessage(ctx, order.OrderNumber, message)
	if err == nil && !resp.Accepted {
		err = fmt.Errorf("%w: %s", errs.ErrSendChatFailed, resp)
	}
	if err != nil {
		d.logger.Warn("发送自动回复失败",
			elog.String("orderNumber", order.OrderNumber),
			elog.String("event", event.String()),
			elog.Int64("ruleId", rule.ID),
			elog.FieldErr(err))
		entry.Status = domain.ExecutionStatusFailed
		entry.Error = err.Error()
		return d.saveLog(ctx, entry)
	}

	entry.Status = domain.ExecutionStatusSent
	var result error
	// 先写标记，保证下一轮不会重复发送
	key := domain.ProcessedKey{OrderNumber: order.OrderNumber, TriggerEvent: event, RuleID: rule.ID}
	if err = d.markers.Create(ctx, key); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %s: %w", errs.ErrSaveProcessedMarker, key, err))
	}
	entry, err = d.saveLog(ctx, entry)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if result == nil {
		d.logger.Info("发送自动回复成功",
			elog.String("orderNumber", order.OrderNumber),
			elog.String("event", event.String()),
			elog.Int64("ruleId", rule.ID))
	}
	return entry, result
}

func (d *dispatcher) saveLog(ctx context.Context, entry domain.ExecutionLog) (domain.ExecutionLog, error) {
	id, err := d.idGen.NextID()
	if err != nil {
		return entry, fmt.Errorf("%w: 生成ID失败: %w", errs.ErrSaveExecutionLog, err)
	}
	entry.ID = id
	entry.Ctime = time.Now().UnixMilli()
	saved, err := d.logs.Create(ctx, entry)
	if err != nil {
		return entry, fmt.Errorf("%w: %w", errs.ErrSaveExecutionLog, err)
	}
	return saved, nil
}
