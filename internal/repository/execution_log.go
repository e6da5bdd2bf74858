package repository

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./execution_log.go -destination=./mocks/execution_log.mock.go -package=repomocks ExecutionLogRepository

// ExecutionLogRepository 执行记录仓储接口
type ExecutionLogRepository interface {
	Create(ctx context.Context, log domain.ExecutionLog) (domain.ExecutionLog, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) ([]domain.ExecutionLog, error)
}

type executionLogRepository struct {
	d dao.ExecutionLogDAO
}

func NewExecutionLogRepository(d dao.ExecutionLogDAO) ExecutionLogRepository {
	return &executionLogRepository{d: d}
}

func (r *executionLogRepository) Create(ctx context.Context, log domain.ExecutionLog) (domain.ExecutionLog, error) {
	entity, err := r.d.Insert(ctx, r.toEntity(log))
	if err != nil {
		return domain.ExecutionLog{}, err
	}
	return r.toDomain(entity), nil
}

func (r *executionLogRepository) FindByOrderNumber(ctx context.Context, orderNumber string) ([]domain.ExecutionLog, error) {
	entities, err := r.d.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.ExecutionLog) domain.ExecutionLog {
		return r.toDomain(src)
	}), nil
}

func (r *executionLogRepository) toEntity(log domain.ExecutionLog) dao.ExecutionLog {
	return dao.ExecutionLog{
		ID:           log.ID,
		RuleID:       log.RuleID,
		OrderNumber:  log.OrderNumber,
		TriggerEvent: log.TriggerEvent.String(),
		Message:      log.Message,
		Status:       log.Status.String(),
		Error:        log.Error,
		Ctime:        log.Ctime,
	}
}

func (r *executionLogRepository) toDomain(log dao.ExecutionLog) domain.ExecutionLog {
	return domain.ExecutionLog{
		ID:           log.ID,
		RuleID:       log.RuleID,
		OrderNumber:  log.OrderNumber,
		TriggerEvent: domain.TriggerEvent(log.TriggerEvent),
		Message:      log.Message,
		Status:       domain.ExecutionStatus(log.Status),
		Error:        log.Error,
		Ctime:        log.Ctime,
	}
}
