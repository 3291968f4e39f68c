// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// PageRepository 页面仓储实现
type PageRepository struct {
	client *Client
}

// NewPageRepository 创建页面仓储
func NewPageRepository(client *Client) *PageRepository {
	return &PageRepository{client: client}
}

// InsertMissing 批量插入页面，(site_id, type) 冲突跳过
func (r *PageRepository) InsertMissing(ctx context.Context, siteID string, pages []*entity.Page) (*repository.InsertOutcome, error) {
	ctx, span := tracer.Start(ctx, "postgres.PageRepository.InsertMissing")
	defer span.End()

	for _, p := range pages {
		p.SiteID = siteID
	}

	db := getDB(ctx, r.client.db)
	outcome, err := insertMissing(db, pages)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert pages: %w", err)
	}
	return outcome, nil
}

// Types 返回站点下已存在页面的类型
func (r *PageRepository) Types(ctx context.Context, siteID string) ([]entity.PageType, error) {
	ctx, span := tracer.Start(ctx, "postgres.PageRepository.Types")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var types []entity.PageType
	if err := db.Model(&entity.Page{}).
		Where("site_id = ?", siteID).
		Pluck("type", &types).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list page types: %w", err)
	}
	return types, nil
}

// ListBySite 获取站点下全部页面
func (r *PageRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.Page, error) {
	ctx, span := tracer.Start(ctx, "postgres.PageRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var pages []*entity.Page
	if err := db.Where("site_id = ?", siteID).
		Order("created_at ASC").
		Find(&pages).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return pages, nil
}
