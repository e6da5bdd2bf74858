//go:build wireinject

package ioc

import (
	"gitee.com/flycash/p2p-autoreply/internal/ioc"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"gitee.com/flycash/p2p-autoreply/internal/repository/dao"
	"gitee.com/flycash/p2p-autoreply/internal/service/dispatcher"
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"gitee.com/flycash/p2p-autoreply/internal/service/gate"
	"gitee.com/flycash/p2p-autoreply/internal/service/rule"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitDistributedLock,
		ioc.InitGoCache,
		ioc.InitIDGenerator,
		ioc.InitDispatcherIDGenerator,
		ioc.InitP2PClient,
	)
	ruleSvcSet = wire.NewSet(
		rule.NewService,
		repository.NewTriggerRuleRepository,
		dao.NewTriggerRuleDAO,
	)
	markerSet = wire.NewSet(
		ioc.InitProcessedMarkerRepository,
		dao.NewProcessedMarkerDAO,
		gate.NewDedupGate,
	)
	executionLogSet = wire.NewSet(
		repository.NewExecutionLogRepository,
		dao.NewExecutionLogDAO,
	)
	engineSet = wire.NewSet(
		ioc.InitOrderFetcher,
		ioc.InitDetector,
		ioc.InitRateGate,
		ioc.InitEngineMetrics,
		dispatcher.NewDispatcher,
		engine.NewEngine,
		ioc.InitJob,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 规则、已处理标记、执行记录
		ruleSvcSet,
		markerSet,
		executionLogSet,

		// 引擎和调度
		engineSet,
		ioc.InitCrons,
		ioc.InitTasks,

		// HTTP
		ioc.InitWebHandler,
		ioc.InitWebServer,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
