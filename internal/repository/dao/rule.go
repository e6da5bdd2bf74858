package dao

import (
	"context"

	pkgdao "gitee.com/flycash/p2p-autoreply/internal/pkg/dao"
	"github.com/ego-component/egorm"
)

// TriggerRule 自动回复规则表，由运营后台维护
type TriggerRule struct {
	ID              int64       `gorm:"primaryKey;autoIncrement;comment:'规则ID'"`
	Name            string      `gorm:"type:VARCHAR(128);NOT NULL;comment:'规则名称'"`
	TriggerEvent    string      `gorm:"type:VARCHAR(32);NOT NULL;index:idx_active_event,priority:2;comment:'触发事件'"`
	TradeType       string      `gorm:"type:VARCHAR(16);NOT NULL;DEFAULT:'';comment:'买卖方向过滤，空表示不限制'"`
	MessageTemplate string      `gorm:"type:TEXT;NOT NULL;comment:'消息模板，支持{{field}}占位符'"`
	DelaySeconds    int64       `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'订单创建后最少经过的秒数'"`
	IsActive        bool        `gorm:"NOT NULL;DEFAULT:true;index:idx_active_event,priority:1;comment:'是否启用'"`
	Priority        int         `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'优先级，越大越先评估'"`
	Conditions      pkgdao.JSON `gorm:"type:JSON;comment:'预留的扩展过滤条件'"`
	Ctime           int64
	Utime           int64
}

// TableName 重命名表
func (TriggerRule) TableName() string {
	return "trigger_rules"
}

type TriggerRuleDAO interface {
	// FindActive 查询所有启用的规则，按优先级从高到低排序
	FindActive(ctx context.Context) ([]TriggerRule, error)
}

type triggerRuleDAO struct {
	db *egorm.Component
}

// NewTriggerRuleDAO 创建规则DAO实例
func NewTriggerRuleDAO(db *egorm.Component) TriggerRuleDAO {
	return &triggerRuleDAO{db: db}
}

func (d *triggerRuleDAO) FindActive(ctx context.Context) ([]TriggerRule, error) {
	var rules []TriggerRule
	err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC").
		Order("id ASC").
		Find(&rules).Error
	return rules, err
}
