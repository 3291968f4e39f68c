// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// ContentTypeRepository 内容类型仓储接口
type ContentTypeRepository interface {
	// InsertMissing 批量插入内容类型；命中 (site_id, key) 唯一约束的行跳过
	InsertMissing(ctx context.Context, siteID string, types []*entity.ContentType) (*InsertOutcome, error)

	// Keys 返回站点下已存在内容类型的键集合
	Keys(ctx context.Context, siteID string) ([]string, error)

	// ListBySite 获取站点下全部内容类型
	ListBySite(ctx context.Context, siteID string) ([]*entity.ContentType, error)
}
