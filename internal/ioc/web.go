package ioc

import (
	"gitee.com/flycash/p2p-autoreply/internal/api/web"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"github.com/gotomicro/ego/server/egin"
)

// InitWebHandler 手动触发也走分布式锁
func InitWebHandler(job *engine.Job, logs repository.ExecutionLogRepository) *web.Handler {
	return web.NewHandler(job, logs)
}

func InitWebServer(h *web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	h.RegisterRoutes(server)
	return server
}
