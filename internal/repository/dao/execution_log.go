package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

// ExecutionLog 自动回复执行记录表，只追加不修改
type ExecutionLog struct {
	ID           uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	RuleID       int64  `gorm:"type:BIGINT;NOT NULL;index:idx_rule_id;comment:'规则ID'"`
	OrderNumber  string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_order_number;comment:'订单号'"`
	TriggerEvent string `gorm:"type:VARCHAR(32);NOT NULL;comment:'触发事件'"`
	Message      string `gorm:"type:TEXT;NOT NULL;comment:'渲染后的消息'"`
	Status       string `gorm:"type:ENUM('sent','failed');NOT NULL;comment:'发送结果'"`
	Error        string `gorm:"type:TEXT;comment:'失败原因'"`
	Ctime        int64  `gorm:"index:idx_ctime"`
}

// TableName 重命名表
func (ExecutionLog) TableName() string {
	return "execution_logs"
}

type ExecutionLogDAO interface {
	Insert(ctx context.Context, log ExecutionLog) (ExecutionLog, error)
	// FindByOrderNumber 按时间倒序查询某个订单的全部执行记录
	FindByOrderNumber(ctx context.Context, orderNumber string) ([]ExecutionLog, error)
}

type executionLogDAO struct {
	db *egorm.Component
}

// NewExecutionLogDAO 创建执行记录DAO实例
func NewExecutionLogDAO(db *egorm.Component) ExecutionLogDAO {
	return &executionLogDAO{db: db}
}

func (d *executionLogDAO) Insert(ctx context.Context, log ExecutionLog) (ExecutionLog, error) {
	if log.Ctime == 0 {
		log.Ctime = time.Now().UnixMilli()
	}
	err := d.db.WithContext(ctx).Create(&log).Error
	return log, err
}

func (d *executionLogDAO) FindByOrderNumber(ctx context.Context, orderNumber string) ([]ExecutionLog, error) {
	var logs []ExecutionLog
	err := d.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("ctime DESC").
		Find(&logs).Error
	return logs, err
}
