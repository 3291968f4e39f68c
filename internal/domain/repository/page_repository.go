// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// PageRepository 页面仓储接口
type PageRepository interface {
	// InsertMissing 批量插入页面；命中 (site_id, type) 唯一约束的行跳过
	InsertMissing(ctx context.Context, siteID string, pages []*entity.Page) (*InsertOutcome, error)

	// Types 返回站点下已存在页面的类型集合
	Types(ctx context.Context, siteID string) ([]entity.PageType, error)

	// ListBySite 获取站点下全部页面
	ListBySite(ctx context.Context, siteID string) ([]*entity.Page, error)
}
