package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter   = errors.New("参数错误")
	ErrMissingCredentials = errors.New("交易平台凭证缺失")

	ErrLoadRules   = errors.New("加载自动回复规则失败")
	ErrFetchOrders = errors.New("拉取订单失败")

	ErrSendChatFailed = errors.New("发送聊天消息失败")

	ErrSaveExecutionLog         = errors.New("保存执行记录失败")
	ErrSaveProcessedMarker      = errors.New("保存已处理标记失败")
	ErrProcessedMarkerDuplicate = errors.New("已处理标记主键冲突")
	ErrCheckProcessedMarker     = errors.New("查询已处理标记失败")

	ErrRunInProgress = errors.New("已有自动回复任务在运行")
)
