// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foundry-cms-api/internal/domain/entity"
)

// 版本号分配在唯一约束上竞争时的最大重试次数
const createVersionMaxRetries = 3

// BlueprintRepository 蓝图仓储实现
type BlueprintRepository struct {
	client *Client
}

// NewBlueprintRepository 创建蓝图仓储
func NewBlueprintRepository(client *Client) *BlueprintRepository {
	return &BlueprintRepository{client: client}
}

// CreateVersion 持久化新蓝图并分配下一个版本号。
// 事务内读 MAX(version)+1 后插入；并发提交同一版本号会命中
// (site_id, version) 唯一约束，此时整体重试而不是复用号段。
func (r *BlueprintRepository) CreateVersion(ctx context.Context, bp *entity.SiteBlueprint) (int, error) {
	ctx, span := tracer.Start(ctx, "postgres.BlueprintRepository.CreateVersion")
	defer span.End()

	var lastErr error
	for attempt := 0; attempt < createVersionMaxRetries; attempt++ {
		err := r.client.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxVersion *int
			if err := tx.Model(&entity.SiteBlueprint{}).
				Where("site_id = ?", bp.SiteID).
				Select("MAX(version)").
				Scan(&maxVersion).Error; err != nil {
				return fmt.Errorf("failed to get max blueprint version: %w", err)
			}

			bp.Version = 1
			if maxVersion != nil {
				bp.Version = *maxVersion + 1
			}
			bp.ID = ""
			return tx.Create(bp).Error
		})
		if err == nil {
			return bp.Version, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			span.RecordError(err)
			return 0, fmt.Errorf("failed to create blueprint version: %w", err)
		}
		lastErr = err
	}

	span.RecordError(lastErr)
	return 0, fmt.Errorf("failed to allocate blueprint version after %d attempts: %w", createVersionMaxRetries, lastErr)
}

// GetByID 根据 ID 获取蓝图
func (r *BlueprintRepository) GetByID(ctx context.Context, id string) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "postgres.BlueprintRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var bp entity.SiteBlueprint
	if err := db.First(&bp, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get blueprint: %w", err)
	}
	return &bp, nil
}

// GetByVersion 根据站点与版本号获取蓝图
func (r *BlueprintRepository) GetByVersion(ctx context.Context, siteID string, version int) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "postgres.BlueprintRepository.GetByVersion")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var bp entity.SiteBlueprint
	if err := db.Where("site_id = ? AND version = ?", siteID, version).First(&bp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get blueprint by version: %w", err)
	}
	return &bp, nil
}

// ListBySite 获取站点的全部蓝图版本（新版本在前）
func (r *BlueprintRepository) ListBySite(ctx context.Context, siteID string) ([]*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "postgres.BlueprintRepository.ListBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var bps []*entity.SiteBlueprint
	if err := db.Where("site_id = ?", siteID).
		Order("version DESC").
		Find(&bps).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}
	return bps, nil
}

// CountBySite 站点下已有的版本数量
func (r *BlueprintRepository) CountBySite(ctx context.Context, siteID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.BlueprintRepository.CountBySite")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	if err := db.Model(&entity.SiteBlueprint{}).
		Where("site_id = ?", siteID).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count blueprints: %w", err)
	}
	return count, nil
}
