package order

import (
	"context"
	"fmt"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/pkg/p2p"
)

const (
	defaultActiveRows  = 50
	defaultHistoryRows = 20
)

//go:generate mockgen -source=./fetcher.go -destination=./mocks/fetcher.mock.go -package=ordermocks Fetcher

// Fetcher 拉取本次运行需要检查的订单
type Fetcher interface {
	// Fetch 合并进行中订单和历史订单，按订单号去重
	// 任意一个接口失败都直接返回错误，不做部分处理
	Fetch(ctx context.Context) ([]domain.Order, error)
}

type fetcher struct {
	client      p2p.Client
	activeRows  int
	historyRows int
}

// NewFetcher rows 小于等于 0 时使用默认值
func NewFetcher(client p2p.Client, activeRows, historyRows int) Fetcher {
	if activeRows <= 0 {
		activeRows = defaultActiveRows
	}
	if historyRows <= 0 {
		historyRows = defaultHistoryRows
	}
	return &fetcher{
		client:      client,
		activeRows:  activeRows,
		historyRows: historyRows,
	}
}

func (f *fetcher) Fetch(ctx context.Context) ([]domain.Order, error) {
	active, err := f.client.ListActiveOrders(ctx, p2p.ListOrdersReq{Page: 1, Rows: f.activeRows})
	if err != nil {
		return nil, fmt.Errorf("%w: 进行中订单: %w", errs.ErrFetchOrders, err)
	}
	history, err := f.client.ListOrderHistory(ctx, p2p.ListOrdersReq{Page: 1, Rows: f.historyRows})
	if err != nil {
		return nil, fmt.Errorf("%w: 历史订单: %w", errs.ErrFetchOrders, err)
	}
	return Merge(active, history), nil
}

// Merge 按订单号去重，先出现的优先，所以进行中订单要放在前面
// 没有订单号的记录直接丢弃
func Merge(lists ...[]domain.Order) []domain.Order {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	seen := make(map[string]struct{}, size)
	res := make([]domain.Order, 0, size)
	for _, l := range lists {
		for _, o := range l {
			if o.OrderNumber == "" {
				continue
			}
			if _, ok := seen[o.OrderNumber]; ok {
				continue
			}
			seen[o.OrderNumber] = struct{}{}
			res = append(res, o)
		}
	}
	return res
}
