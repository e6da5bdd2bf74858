package domain

import "fmt"

// ProcessedKey 唯一确定一次规则触发
type ProcessedKey struct {
	OrderNumber  string
	TriggerEvent TriggerEvent
	RuleID       int64
}

func (k ProcessedKey) String() string {
	return fmt.Sprintf("%s:%s:%d", k.OrderNumber, k.TriggerEvent, k.RuleID)
}

// ProcessedMarker 发送成功之后才会写入，同一个 ProcessedKey 最多一条
type ProcessedMarker struct {
	Key   ProcessedKey
	Ctime int64
}

type ExecutionStatus string

const (
	ExecutionStatusSent   ExecutionStatus = "sent"
	ExecutionStatusFailed ExecutionStatus = "failed"
)

func (s ExecutionStatus) String() string {
	return string(s)
}

// ExecutionLog 每次发送尝试的审计记录，只追加
type ExecutionLog struct {
	ID           uint64
	RuleID       int64
	OrderNumber  string
	TriggerEvent TriggerEvent
	Message      string
	Status       ExecutionStatus
	Error        string
	Ctime        int64
}

// RunSummary 一次运行的统计结果，仅用于监控
type RunSummary struct {
	RunID            uint64 `json:"runId"`
	Processed        int    `json:"processed"`
	Errors           int    `json:"errors"`
	OrdersChecked    int    `json:"ordersChecked"`
	RulesActive      int    `json:"rulesActive"`
	SkippedDelay     int    `json:"skippedDelay"`
	SkippedDuplicate int    `json:"skippedDuplicate"`
	SkippedRateLimit int    `json:"skippedRateLimit"`
}
