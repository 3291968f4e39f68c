// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// ContentTypeRepository 内容类型仓储实现
type ContentTypeRepository struct {
	client *Client
}

// NewContentTypeRepository 创建内容类型仓储
func NewContentTypeRepository(client *Client) *ContentTypeRepository {
	return &ContentTypeRepository{client: client}
}

// InsertMissing 批量插入内容类型，(site_id, key) 冲突跳过
func (r *ContentTypeRepository) InsertMissing(ctx context.Context, siteID string, types []*entity.ContentType) (*repository.InsertOutcome, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentTypeRepository.InsertMissing")
	defer span.End()

	for _, t := range types {
		t.SiteID = siteID
	}

	db := getDB(ctx, r.client.db)
	outcome, err := insertMissing(db, types)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert content types: %w", err)
	}
	return outcome, nil
}

// Keys 返回站点下已存在内容类型的键
func (r *ContentTypeRepository) Keys(ctx context.Context, siteID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentTypeRepository.Keys")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var keys []string
	if err := db.Model(&entity.ContentType{}).
		Where("site_id = ?", siteID).
		Pluck("key", &keys).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list content type keys: %w", err)
	}
	return keys, nil
}

// ListBySite 获取站点下全部内容类型
func (r *ContentTypeRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.ContentType, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentTypeRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var types []*entity.ContentType
	if err := db.Where("site_id = ?", siteID).
		Order("position ASC").
		Find(&types).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	return types, nil
}
