// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// ContentRepository 内容仓储接口
type ContentRepository interface {
	// ListBySite 获取站点下全部内容条目
	ListBySite(ctx context.Context, siteID string) ([]*entity.Content, error)
}
