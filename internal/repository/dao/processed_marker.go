package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/p2p-autoreply/internal/errs"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ProcessedMarker 已处理标记表，(order_number, trigger_event, rule_id) 唯一
type ProcessedMarker struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber  string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_order_event_rule,priority:1;comment:'订单号'"`
	TriggerEvent string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:uk_order_event_rule,priority:2;comment:'触发事件'"`
	RuleID       int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:uk_order_event_rule,priority:3;comment:'规则ID'"`
	Ctime        int64
}

// TableName 重命名表
func (ProcessedMarker) TableName() string {
	return "processed_markers"
}

type ProcessedMarkerDAO interface {
	Exists(ctx context.Context, orderNumber, triggerEvent string, ruleID int64) (bool, error)
	// Insert 唯一索引冲突时返回 errs.ErrProcessedMarkerDuplicate
	Insert(ctx context.Context, marker ProcessedMarker) error
}

type processedMarkerDAO struct {
	db *egorm.Component
}

// NewProcessedMarkerDAO 创建已处理标记DAO实例
func NewProcessedMarkerDAO(db *egorm.Component) ProcessedMarkerDAO {
	return &processedMarkerDAO{db: db}
}

func (d *processedMarkerDAO) Exists(ctx context.Context, orderNumber, triggerEvent string, ruleID int64) (bool, error) {
	var markers []ProcessedMarker
	err := d.db.WithContext(ctx).
		Select("id").
		Where("order_number = ? AND trigger_event = ? AND rule_id = ?", orderNumber, triggerEvent, ruleID).
		Limit(1).
		Find(&markers).Error
	if err != nil {
		return false, err
	}
	return len(markers) > 0, nil
}

func (d *processedMarkerDAO) Insert(ctx context.Context, marker ProcessedMarker) error {
	marker.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&marker).Error
	if isUniqueConstraintError(err) {
		return fmt.Errorf("%w: %s:%s:%d", errs.ErrProcessedMarkerDuplicate,
			marker.OrderNumber, marker.TriggerEvent, marker.RuleID)
	}
	return err
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
