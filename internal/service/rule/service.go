package rule

import (
	"context"
	"fmt"
	"sort"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=rulemocks Service

// Service 规则读取服务，引擎对规则只读
type Service interface {
	// ListActive 返回启用的规则，按优先级从高到低
	ListActive(ctx context.Context) ([]domain.TriggerRule, error)
}

type service struct {
	repo   repository.TriggerRuleRepository
	logger *elog.Component
}

func NewService(repo repository.TriggerRuleRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) ListActive(ctx context.Context) ([]domain.TriggerRule, error) {
	rules, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrLoadRules, err)
	}
	rules = slice.FilterMap(rules, func(_ int, r domain.TriggerRule) (domain.TriggerRule, bool) {
		if !r.IsActive {
			return r, false
		}
		if err := r.Validate(); err != nil {
			s.logger.Warn("忽略非法规则", elog.Int64("ruleId", r.ID), elog.FieldErr(err))
			return r, false
		}
		return r, true
	})
	// 数据库已经排过序，这里保证相同优先级时顺序稳定
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}

// Match 返回事件和买卖方向都匹配的规则，保持 rules 原有顺序
// 不会因为前面的规则匹配就跳过后面的规则
func Match(rules []domain.TriggerRule, order domain.Order, event domain.TriggerEvent) []domain.TriggerRule {
	return slice.FilterMap(rules, func(_ int, r domain.TriggerRule) (domain.TriggerRule, bool) {
		return r, r.TriggerEvent == event && r.MatchTradeType(order.TradeType)
	})
}
