package dao

import "github.com/ego-component/egorm"

// InitTables 建表，processed_markers 上的唯一索引是去重的最终保障
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&TriggerRule{},
		&ProcessedMarker{},
		&ExecutionLog{},
	)
}
