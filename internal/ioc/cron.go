package ioc

import (
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"github.com/gotomicro/ego/task/ecron"
)

func InitCrons(job *engine.Job) []ecron.Ecron {
	c := ecron.Load("cron.autoreply").Build(ecron.WithJob(job.Do))
	return []ecron.Ecron{c}
}
