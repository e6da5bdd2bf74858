package repository

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./rule.go -destination=./mocks/rule.mock.go -package=repomocks TriggerRuleRepository

// TriggerRuleRepository 规则仓储接口
type TriggerRuleRepository interface {
	// FindActive 返回启用的规则，按优先级从高到低
	FindActive(ctx context.Context) ([]domain.TriggerRule, error)
}

type triggerRuleRepository struct {
	d      dao.TriggerRuleDAO
	logger *elog.Component
}

func NewTriggerRuleRepository(d dao.TriggerRuleDAO) TriggerRuleRepository {
	return &triggerRuleRepository{
		d:      d,
		logger: elog.DefaultLogger,
	}
}

func (r *triggerRuleRepository) FindActive(ctx context.Context) ([]domain.TriggerRule, error) {
	entities, err := r.d.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.TriggerRule) domain.TriggerRule {
		return r.toDomain(src)
	}), nil
}

func (r *triggerRuleRepository) toDomain(src dao.TriggerRule) domain.TriggerRule {
	var conditions map[string]any
	if err := src.Conditions.Decode(&conditions); err != nil {
		// conditions 目前不参与匹配，解析失败不影响规则本身
		r.logger.Warn("解析规则 conditions 失败",
			elog.Int64("ruleId", src.ID), elog.FieldErr(err))
		conditions = nil
	}
	return domain.TriggerRule{
		ID:              src.ID,
		Name:            src.Name,
		TriggerEvent:    domain.TriggerEvent(src.TriggerEvent),
		TradeType:       src.TradeType,
		MessageTemplate: src.MessageTemplate,
		DelaySeconds:    src.DelaySeconds,
		IsActive:        src.IsActive,
		Priority:        src.Priority,
		Conditions:      conditions,
		Ctime:           src.Ctime,
		Utime:           src.Utime,
	}
}
