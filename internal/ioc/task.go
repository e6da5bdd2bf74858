package ioc

import (
	"context"

	"gitee.com/flycash/p2p-autoreply/internal/pkg/loopjob"
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"github.com/meoying/dlock-go"
)

type Task interface {
	Start(ctx context.Context)
}

type loopTask struct {
	loop *loopjob.InfiniteLoop
}

func (t *loopTask) Start(ctx context.Context) {
	t.loop.Run(ctx)
}

// InitTasks 没有开启 loopEnabled 时只靠 ecron 调度
// 循环任务和 Job 抢的是同一把锁，持有锁期间 ecron 和 HTTP 触发都会返回 ErrRunInProgress
func InitTasks(e engine.Engine, dclient dlock.Client) []Task {
	cfg := loadAutoReplyConfig()
	if !cfg.LoopEnabled {
		return nil
	}
	key := cfg.LockKey
	if key == "" {
		key = engine.DefaultLockKey
	}
	biz := func(ctx context.Context) error {
		_, err := e.Run(ctx)
		return err
	}
	return []Task{&loopTask{
		loop: loopjob.NewInfiniteLoop(dclient, biz, key, cfg.Interval, cfg.LockExpiration),
	}}
}
