// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// SeoRepository SEO 元数据仓储实现
type SeoRepository struct {
	client *Client
}

// NewSeoRepository 创建 SEO 元数据仓储
func NewSeoRepository(client *Client) *SeoRepository {
	return &SeoRepository{client: client}
}

// InsertMissing 批量插入 SEO 行，(site_id, target_kind, target_id) 冲突跳过
func (r *SeoRepository) InsertMissing(ctx context.Context, siteID string, metas []*entity.SeoMeta) (*repository.InsertOutcome, error) {
	ctx, span := tracer.Start(ctx, "postgres.SeoRepository.InsertMissing")
	defer span.End()

	for _, m := range metas {
		m.SiteID = siteID
	}

	db := getDB(ctx, r.client.db)
	outcome, err := insertMissing(db, metas)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert seo metas: %w", err)
	}
	return outcome, nil
}

// CoveredTargets 返回站点下已有 SEO 行的目标集合
func (r *SeoRepository) CoveredTargets(ctx context.Context, siteID string) (map[entity.SeoTargetKind]map[string]bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.SeoRepository.CoveredTargets")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var rows []struct {
		TargetKind entity.SeoTargetKind
		TargetID   string
	}
	if err := db.Model(&entity.SeoMeta{}).
		Where("site_id = ?", siteID).
		Select("target_kind", "target_id").
		Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list covered seo targets: %w", err)
	}

	covered := make(map[entity.SeoTargetKind]map[string]bool)
	for _, row := range rows {
		if covered[row.TargetKind] == nil {
			covered[row.TargetKind] = make(map[string]bool)
		}
		covered[row.TargetKind][row.TargetID] = true
	}
	return covered, nil
}
