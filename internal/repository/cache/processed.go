package cache

import (
	"context"
	"fmt"

	"gitee.com/flycash/p2p-autoreply/internal/domain"
)

const (
	ProcessedPrefix = "autoreply:processed"
)

// ProcessedCache 只缓存"已处理"的结果
// 标记一旦写入就不会删除，所以命中一定是准确的，未命中需要回源数据库
type ProcessedCache interface {
	Exists(ctx context.Context, key domain.ProcessedKey) (bool, error)
	Set(ctx context.Context, key domain.ProcessedKey) error
}

func ProcessedCacheKey(key domain.ProcessedKey) string {
	return fmt.Sprintf("%s:%s", ProcessedPrefix, key.String())
}
