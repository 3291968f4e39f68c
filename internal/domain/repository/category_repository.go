// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// InsertMissing 批量插入分类；命中 (site_id, slug) 唯一约束的行跳过
	InsertMissing(ctx context.Context, siteID string, categories []*entity.Category) (*InsertOutcome, error)

	// Slugs 返回站点下已存在分类的 slug 集合
	Slugs(ctx context.Context, siteID string) ([]string, error)

	// ListBySite 获取站点下全部分类（按位置排序）
	ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error)
}
