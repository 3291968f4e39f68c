// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
)

// SiteRepository 站点仓储实现
type SiteRepository struct {
	client *Client
}

// NewSiteRepository 创建站点仓储
func NewSiteRepository(client *Client) *SiteRepository {
	return &SiteRepository{client: client}
}

// Create 创建站点
func (r *SiteRepository) Create(ctx context.Context, site *entity.Site) error {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(site).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create site: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取站点
func (r *SiteRepository) GetByID(ctx context.Context, id string) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var site entity.Site
	if err := db.First(&site, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return &site, nil
}

// GetBySlug 根据 Slug 获取站点
func (r *SiteRepository) GetBySlug(ctx context.Context, slug string) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var site entity.Site
	if err := db.First(&site, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get site by slug: %w", err)
	}
	return &site, nil
}

// GetByHostname 根据绑定域名获取站点（hostnames 为 jsonb 数组，用包含查询）
func (r *SiteRepository) GetByHostname(ctx context.Context, hostname string) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.GetByHostname")
	defer span.End()

	needle, err := json.Marshal([]string{hostname})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hostname: %w", err)
	}

	db := getDB(ctx, r.client.db)
	var site entity.Site
	if err := db.Where("hostnames @> ?::jsonb", string(needle)).First(&site).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get site by hostname: %w", err)
	}
	return &site, nil
}

// Update 更新站点
func (r *SiteRepository) Update(ctx context.Context, site *entity.Site) error {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(site).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update site: %w", err)
	}
	return nil
}

// Delete 删除站点
func (r *SiteRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Site{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete site: %w", err)
	}
	return nil
}

// List 获取站点列表
func (r *SiteRepository) List(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.Site], error) {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Site{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count sites: %w", err)
	}

	var sites []*entity.Site
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&sites).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	return repository.NewPagedResult(sites, total, pagination), nil
}

// SetActiveBlueprint 移动站点的生效蓝图指针
func (r *SiteRepository) SetActiveBlueprint(ctx context.Context, siteID, blueprintID string) error {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.SetActiveBlueprint")
	defer span.End()

	db := getDB(ctx, r.client.db)
	result := db.Model(&entity.Site{}).
		Where("id = ?", siteID).
		Update("active_blueprint_id", blueprintID)
	if result.Error != nil {
		span.RecordError(result.Error)
		return fmt.Errorf("failed to set active blueprint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("site %s not found", siteID)
	}
	return nil
}

// ExistsBySlug 检查 Slug 是否存在
func (r *SiteRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.SiteRepository.ExistsBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.Site{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check site slug: %w", err)
	}
	return count > 0, nil
}
