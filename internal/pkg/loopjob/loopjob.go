package loopjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

// 没有 ecron 的部署方式下，用这个在多实例之间轮流执行

const defaultTimeout = time.Second * 3

type InfiniteLoop struct {
	dclient    dlock.Client
	key        string
	interval   time.Duration
	expiration time.Duration
	logger     *elog.Component
	biz        func(ctx context.Context) error
}

func NewInfiniteLoop(
	dclient dlock.Client,
	// 每一轮要执行的业务。ctx 被取消的时候退出全部循环
	biz func(ctx context.Context) error,
	key string,
	// 两轮业务之间的间隔
	interval time.Duration,
	// 分布式锁的过期时间，要覆盖单轮业务的最长耗时
	// 每轮业务结束和每次休眠结束都会续约
	expiration time.Duration,
) *InfiniteLoop {
	if interval <= 0 {
		interval = time.Minute
	}
	if expiration < interval*2 {
		expiration = interval * 2
	}
	return &InfiniteLoop{
		dclient:    dclient,
		key:        key,
		interval:   interval,
		expiration: expiration,
		logger:     elog.DefaultLogger.With(elog.String("key", key)),
		biz:        biz,
	}
}

// Run 当 ctx 被取消的时候，就会退出
func (l *InfiniteLoop) Run(ctx context.Context) {
	for {
		lock, err := l.dclient.NewLock(ctx, l.key, l.expiration)
		if err != nil {
			l.logger.Error("初始化分布式锁失败，重试", elog.FieldErr(err))
			if !l.sleep(ctx) {
				return
			}
			continue
		}

		lockCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		// 没拿到锁，不管是系统错误还是锁被别人持有，等一会再试
		err = lock.Lock(lockCtx)
		cancel()
		if err != nil {
			l.logger.Debug("没有抢到分布式锁", elog.FieldErr(err))
			if !l.sleep(ctx) {
				return
			}
			continue
		}

		err = l.bizLoop(ctx, lock)
		// 要么是续约失败，要么是 ctx 本身已经过期了
		if err != nil {
			l.logger.Error("任务循环中断", elog.FieldErr(err))
		}
		// ctx 此时可能已经被取消了
		unCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		//nolint:contextcheck // 原始 ctx 可能已被取消，但仍需尝试解锁
		unErr := lock.Unlock(unCtx)
		cancel()
		if unErr != nil {
			l.logger.Error("释放分布式锁失败", elog.FieldErr(unErr))
		}
		err = ctx.Err()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			l.logger.Info("任务被取消，退出任务循环")
			return
		}
		if !l.sleep(ctx) {
			return
		}
	}
}

func (l *InfiniteLoop) bizLoop(ctx context.Context, lock dlock.Lock) error {
	for {
		err := l.biz(ctx)
		if err != nil {
			l.logger.Error("业务执行失败", elog.FieldErr(err))
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// 业务可能跑得比 interval 久，休眠前先续约
		if err = l.refresh(ctx, lock); err != nil {
			return err
		}
		if !l.sleep(ctx) {
			return ctx.Err()
		}
		if err = l.refresh(ctx, lock); err != nil {
			return err
		}
	}
}

func (l *InfiniteLoop) refresh(ctx context.Context, lock dlock.Lock) error {
	refCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := lock.Refresh(refCtx); err != nil {
		return fmt.Errorf("分布式锁续约失败 %w", err)
	}
	return nil
}

// sleep 返回 false 表示 ctx 已经结束
func (l *InfiniteLoop) sleep(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(l.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
