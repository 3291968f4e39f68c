// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"foundry-cms-api/internal/domain/entity"
)

// SeoRepository SEO 元数据仓储接口
type SeoRepository interface {
	// InsertMissing 批量插入 SEO 行；命中 (site_id, target_kind, target_id)
	// 唯一约束的行跳过（apply 只插入，不更新不删除）
	InsertMissing(ctx context.Context, siteID string, metas []*entity.SeoMeta) (*InsertOutcome, error)

	// CoveredTargets 返回站点下已有 SEO 行的目标 (kind, id) 集合
	CoveredTargets(ctx context.Context, siteID string) (map[entity.SeoTargetKind]map[string]bool, error)
}
