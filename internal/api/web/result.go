package web

// Result 统一的响应结构
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

const (
	CodeOK           = 0
	CodeInvalidParam = 400001
	CodeRunning      = 409001
	CodeInternal     = 500001
)

// ExecutionLogVO 对外展示的执行记录
type ExecutionLogVO struct {
	ID           uint64 `json:"id,string"`
	RuleID       int64  `json:"ruleId"`
	OrderNumber  string `json:"orderNumber"`
	TriggerEvent string `json:"triggerEvent"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	Ctime        int64  `json:"ctime"`
}
