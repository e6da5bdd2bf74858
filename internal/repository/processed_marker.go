package repository

import (
	"context"
	"errors"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/repository/cache"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./processed_marker.go -destination=./mocks/processed_marker.mock.go -package=repomocks ProcessedMarkerRepository

// ProcessedMarkerRepository 已处理标记仓储接口
type ProcessedMarkerRepository interface {
	Exists(ctx context.Context, key domain.ProcessedKey) (bool, error)
	// Create 并发运行导致的唯一索引冲突视为已经写入
	Create(ctx context.Context, key domain.ProcessedKey) error
}

type processedMarkerRepository struct {
	d      dao.ProcessedMarkerDAO
	local  cache.ProcessedCache
	redis  cache.ProcessedCache
	logger *elog.Component
}

// NewProcessedMarkerRepository 依次查询本地缓存、redis、数据库
func NewProcessedMarkerRepository(d dao.ProcessedMarkerDAO, local, redis cache.ProcessedCache) ProcessedMarkerRepository {
	return &processedMarkerRepository{
		d:      d,
		local:  local,
		redis:  redis,
		logger: elog.DefaultLogger,
	}
}

func (r *processedMarkerRepository) Exists(ctx context.Context, key domain.ProcessedKey) (bool, error) {
	if ok, _ := r.local.Exists(ctx, key); ok {
		return true, nil
	}
	ok, err := r.redis.Exists(ctx, key)
	if err != nil {
		// redis 出问题就直接回源
		r.logger.Warn("查询 redis 已处理标记失败", elog.String("key", key.String()), elog.FieldErr(err))
	}
	if ok {
		_ = r.local.Set(ctx, key)
		return true, nil
	}
	ok, err = r.d.Exists(ctx, key.OrderNumber, key.TriggerEvent.String(), key.RuleID)
	if err != nil {
		return false, err
	}
	if ok {
		r.fillCache(ctx, key)
	}
	return ok, nil
}

func (r *processedMarkerRepository) Create(ctx context.Context, key domain.ProcessedKey) error {
	err := r.d.Insert(ctx, dao.ProcessedMarker{
		OrderNumber:  key.OrderNumber,
		TriggerEvent: key.TriggerEvent.String(),
		RuleID:       key.RuleID,
	})
	if err != nil && !errors.Is(err, errs.ErrProcessedMarkerDuplicate) {
		return err
	}
	if err != nil {
		r.logger.Warn("已处理标记已存在，可能有并发运行", elog.String("key", key.String()))
	}
	r.fillCache(ctx, key)
	return nil
}

func (r *processedMarkerRepository) fillCache(ctx context.Context, key domain.ProcessedKey) {
	_ = r.local.Set(ctx, key)
	if err := r.redis.Set(ctx, key); err != nil {
		r.logger.Warn("写入 redis 已处理标记失败", elog.String("key", key.String()), elog.FieldErr(err))
	}
}
