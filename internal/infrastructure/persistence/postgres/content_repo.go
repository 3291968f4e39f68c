// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
)

// ContentRepository 内容仓储实现
type ContentRepository struct {
	client *Client
}

// NewContentRepository 创建内容仓储
func NewContentRepository(client *Client) *ContentRepository {
	return &ContentRepository{client: client}
}

// ListBySite 获取站点下全部内容条目
func (r *ContentRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.Content, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var contents []*entity.Content
	if err := db.Where("site_id = ?", siteID).
		Order("created_at ASC").
		Find(&contents).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	return contents, nil
}
