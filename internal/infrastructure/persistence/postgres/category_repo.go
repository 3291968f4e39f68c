// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// CategoryRepository 分类仓储实现
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

// InsertMissing 批量插入分类，(site_id, slug) 冲突跳过
func (r *CategoryRepository) InsertMissing(ctx context.Context, siteID string, categories []*entity.Category) (*repository.InsertOutcome, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.InsertMissing")
	defer span.End()

	for _, c := range categories {
		c.SiteID = siteID
	}

	db := getDB(ctx, r.client.db)
	outcome, err := insertMissing(db, categories)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert categories: %w", err)
	}
	return outcome, nil
}

// Slugs 返回站点下已存在分类的 slug
func (r *CategoryRepository) Slugs(ctx context.Context, siteID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.Slugs")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var slugs []string
	if err := db.Model(&entity.Category{}).
		Where("site_id = ?", siteID).
		Pluck("slug", &slugs).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list category slugs: %w", err)
	}
	return slugs, nil
}

// ListBySite 获取站点下全部分类
func (r *CategoryRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var categories []*entity.Category
	if err := db.Where("site_id = ?", siteID).
		Order("position ASC").
		Find(&categories).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
