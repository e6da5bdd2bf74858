package gate

import (
	"context"
	"fmt"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
)

// DedupGate 同一个 (订单, 事件, 规则) 发送成功之后就不会再触发
type DedupGate struct {
	repo repository.ProcessedMarkerRepository
}

func NewDedupGate(repo repository.ProcessedMarkerRepository) *DedupGate {
	return &DedupGate{repo: repo}
}

// Allow 返回 false 表示已经处理过
func (g *DedupGate) Allow(ctx context.Context, key domain.ProcessedKey) (bool, error) {
	ok, err := g.repo.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", errs.ErrCheckProcessedMarker, key, err)
	}
	return !ok, nil
}
