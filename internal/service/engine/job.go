package engine

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const (
	DefaultLockKey        = "autoreply:run"
	defaultLockExpiration = time.Minute
	lockTimeout           = 3 * time.Second
)

var _ Engine = (*Job)(nil)

// Job 在分布式锁的保护下执行 Engine，多实例部署时同一时刻只有一轮在跑
type Job struct {
	engine     Engine
	dclient    dlock.Client
	key        string
	expiration time.Duration
	logger     *elog.Component
}

func NewJob(e Engine, dclient dlock.Client, key string, expiration time.Duration) *Job {
	if key == "" {
		key = DefaultLockKey
	}
	if expiration <= 0 {
		expiration = defaultLockExpiration
	}
	return &Job{
		engine:     e,
		dclient:    dclient,
		key:        key,
		expiration: expiration,
		logger:     elog.DefaultLogger.With(elog.String("key", key)),
	}
}

// Run 拿不到锁返回 errs.ErrRunInProgress
func (j *Job) Run(ctx context.Context) (domain.RunSummary, error) {
	lock, err := j.dclient.NewLock(ctx, j.key, j.expiration)
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("初始化分布式锁失败: %w", err)
	}
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("%w: %w", errs.ErrRunInProgress, err)
	}
	defer func() {
		// ctx 可能已经被取消，释放锁不受它控制
		unCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
		//nolint:contextcheck // 必须使用 Background Context 释放锁
		unErr := lock.Unlock(unCtx)
		cancel()
		if unErr != nil {
			j.logger.Error("释放分布式锁失败", elog.FieldErr(unErr))
		}
	}()
	return j.engine.Run(ctx)
}

// Do 给 ecron 和循环任务用
func (j *Job) Do(ctx context.Context) error {
	_, err := j.Run(ctx)
	return err
}
