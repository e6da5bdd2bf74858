package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"gitee.com/flycash/p2p-autoreply/internal/repository"
	"gitee.com/flycash/p2p-autoreply/internal/service/engine"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	runner engine.Engine
	logs   repository.ExecutionLogRepository
	logger *elog.Component
}

// NewHandler runner 一般是 *engine.Job，保证和定时任务互斥
func NewHandler(runner engine.Engine, logs repository.ExecutionLogRepository) *Handler {
	return &Handler{
		runner: runner,
		logs:   logs,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) RegisterRoutes(server gin.IRouter) {
	g := server.Group("/autoreply")
	g.POST("/run", h.Run)
	g.GET("/logs/:orderNumber", h.Logs)
}

// Run 手动触发一轮，返回本轮的统计结果
func (h *Handler) Run(ctx *gin.Context) {
	summary, err := h.runner.Run(ctx.Request.Context())
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, Result[domain.RunSummary]{Code: CodeOK, Msg: "OK", Data: summary})
	case errors.Is(err, errs.ErrRunInProgress):
		ctx.JSON(http.StatusConflict, Result[domain.RunSummary]{Code: CodeRunning, Msg: err.Error()})
	default:
		h.logger.Error("手动触发自动回复失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, Result[domain.RunSummary]{
			Code: CodeInternal,
			Msg:  err.Error(),
			Data: summary,
		})
	}
}

func (h *Handler) Logs(ctx *gin.Context) {
	orderNumber := ctx.Param("orderNumber")
	if orderNumber == "" {
		ctx.JSON(http.StatusBadRequest, Result[[]ExecutionLogVO]{Code: CodeInvalidParam, Msg: errs.ErrInvalidParameter.Error()})
		return
	}
	logs, err := h.logs.FindByOrderNumber(ctx.Request.Context(), orderNumber)
	if err != nil {
		h.logger.Error("查询执行记录失败", elog.String("orderNumber", orderNumber), elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, Result[[]ExecutionLogVO]{Code: CodeInternal, Msg: "系统错误"})
		return
	}
	ctx.JSON(http.StatusOK, Result[[]ExecutionLogVO]{
		Code: CodeOK,
		Msg:  "OK",
		Data: slice.Map(logs, func(_ int, src domain.ExecutionLog) ExecutionLogVO {
			return ExecutionLogVO{
				ID:           src.ID,
				RuleID:       src.RuleID,
				OrderNumber:  src.OrderNumber,
				TriggerEvent: src.TriggerEvent.String(),
				Message:      src.Message,
				Status:       src.Status.String(),
				Error:        src.Error,
				Ctime:        src.Ctime,
			}
		}),
	})
}
