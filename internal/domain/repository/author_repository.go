// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// AuthorRepository 作者仓储接口
type AuthorRepository interface {
	// InsertMissing 批量插入作者；命中 (site_id, role_key) 唯一约束的行
	// 视为已存在并计入 Skipped，不作为错误传播
	InsertMissing(ctx context.Context, siteID string, authors []*entity.Author) (*InsertOutcome, error)

	// RoleKeys 返回站点下已存在作者的角色键集合（比对用自然键）
	RoleKeys(ctx context.Context, siteID string) ([]string, error)

	// ListBySite 获取站点下全部作者
	ListBySite(ctx context.Context, siteID string) ([]*entity.Author, error)
}
