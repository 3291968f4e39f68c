// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// BlueprintRepository 蓝图仓储接口。
// 蓝图是只追加的版本日志：版本号只分配一次、从不复用，
// 版本号的竞争在实现层通过唯一约束解决，而非先数后写。
type BlueprintRepository interface {
	// CreateVersion 持久化新蓝图并原子分配下一个版本号；
	// 返回实际写入的版本号
	CreateVersion(ctx context.Context, bp *entity.SiteBlueprint) (int, error)

	// GetByID 根据 ID 获取蓝图
	GetByID(ctx context.Context, id string) (*entity.SiteBlueprint, error)

	// GetByVersion 根据站点与版本号获取蓝图
	GetByVersion(ctx context.Context, siteID string, version int) (*entity.SiteBlueprint, error)

	// ListBySite 获取站点的全部蓝图版本（新版本在前）
	ListBySite(ctx context.Context, siteID string) ([]*entity.SiteBlueprint, error)

	// CountBySite 站点下已有的版本数量
	CountBySite(ctx context.Context, siteID string) (int64, error)
}
