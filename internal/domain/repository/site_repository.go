// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// SiteRepository 站点仓储接口
type SiteRepository interface {
	// Create 创建站点
	Create(ctx context.Context, site *entity.Site) error

	// GetByID 根据 ID 获取站点
	GetByID(ctx context.Context, id string) (*entity.Site, error)

	// GetBySlug 根据 Slug 获取站点
	GetBySlug(ctx context.Context, slug string) (*entity.Site, error)

	// GetByHostname 根据绑定域名获取站点
	GetByHostname(ctx context.Context, hostname string) (*entity.Site, error)

	// Update 更新站点
	Update(ctx context.Context, site *entity.Site) error

	// Delete 删除站点
	Delete(ctx context.Context, id string) error

	// List 获取站点列表
	List(ctx context.Context, pagination Pagination) (*PagedResult[*entity.Site], error)

	// SetActiveBlueprint 移动站点的生效蓝图指针（蓝图唯一的变更路径）
	SetActiveBlueprint(ctx context.Context, siteID, blueprintID string) error

	// ExistsBySlug 检查 Slug 是否存在
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
