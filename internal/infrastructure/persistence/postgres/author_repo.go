// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// AuthorRepository 作者仓储实现
type AuthorRepository struct {
	client *Client
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(client *Client) *AuthorRepository {
	return &AuthorRepository{client: client}
}

// InsertMissing 批量插入作者，(site_id, role_key) 冲突跳过
func (r *AuthorRepository) InsertMissing(ctx context.Context, siteID string, authors []*entity.Author) (*repository.InsertOutcome, error) {
	ctx, span := tracer.Start(ctx, "postgres.AuthorRepository.InsertMissing")
	defer span.End()

	for _, a := range authors {
		a.SiteID = siteID
	}

	db := getDB(ctx, r.client.db)
	outcome, err := insertMissing(db, authors)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert authors: %w", err)
	}
	return outcome, nil
}

// RoleKeys 返回站点下已存在作者的角色键
func (r *AuthorRepository) RoleKeys(ctx context.Context, siteID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.AuthorRepository.RoleKeys")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var keys []string
	if err := db.Model(&entity.Author{}).
		Where("site_id = ?", siteID).
		Pluck("role_key", &keys).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list author role keys: %w", err)
	}
	return keys, nil
}

// ListBySite 获取站点下全部作者
func (r *AuthorRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.Author, error) {
	ctx, span := tracer.Start(ctx, "postgres.AuthorRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var authors []*entity.Author
	if err := db.Where("site_id = ?", siteID).
		Order("created_at ASC").
		Find(&authors).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}
