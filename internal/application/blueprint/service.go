// Package blueprint 实现站点蓝图的构建、版本化与激活
package blueprint

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"foundry-cms-api/internal/application/decision"
	"foundry-cms-api/internal/application/plan"
	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	"foundry-cms-api/internal/infrastructure/messaging"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/logger"
	"foundry-cms-api/pkg/metrics"
)

var tracer = otel.Tracer("blueprint")

// AuditPublisher 审计事件发布
type AuditPublisher interface {
	PublishBlueprintSaved(ctx context.Context, event *messaging.BlueprintSavedMessage) (string, error)
}

// Service 蓝图服务。build 是纯计算的期望状态快照；save 追加版本；
// activate 移动站点的生效指针，这是蓝图影响 apply 行为的唯一途径。
type Service struct {
	sites      repository.SiteRepository
	blueprints repository.BlueprintRepository
	engine     *decision.Engine
	generator  *plan.Generator
	audit      AuditPublisher
}

// NewService 创建蓝图服务
func NewService(
	sites repository.SiteRepository,
	blueprints repository.BlueprintRepository,
	engine *decision.Engine,
	generator *plan.Generator,
	audit AuditPublisher,
) *Service {
	return &Service{
		sites:      sites,
		blueprints: blueprints,
		engine:     engine,
		generator:  generator,
		audit:      audit,
	}
}

// loadSite 读取站点，不存在时返回领域错误
func (s *Service) loadSite(ctx context.Context, siteID string) (*entity.Site, error) {
	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load site")
	}
	if site == nil {
		return nil, apperrors.ErrSiteNotFound
	}
	return site, nil
}

// Build 从站点当前属性重算决策档案并生成完整蓝图快照。
// 不落盘也不读取既有蓝图；同一站点属性下结果完全确定。
func (s *Service) Build(ctx context.Context, siteID string) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.Build")
	defer span.End()

	site, err := s.loadSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return s.buildFromSite(site), nil
}

// buildFromSite 纯计算部分，便于 Save 复用
func (s *Service) buildFromSite(site *entity.Site) *entity.SiteBlueprint {
	profile := s.engine.ComputeProfile(site.DecisionInput())

	authors := s.generator.BuildAuthorsPlan(plan.AuthorsInput{
		SiteName: site.Name,
		Profile:  profile,
	})
	categories := s.generator.BuildCategoryPlan(plan.TaxonomyInput{
		SiteType:    site.SiteType,
		Description: site.Description,
		Profile:     profile,
	})
	pages := s.generator.BuildMandatoryPagesPlan(plan.PagesInput{
		SiteName: site.Name,
		SiteSize: profile.SiteSize,
		Language: site.Language,
		Country:  site.Country,
	})
	contentTypes := s.generator.BuildContentTypePlan(profile)

	return &entity.SiteBlueprint{
		SiteID:          site.ID,
		Authors:         authors,
		Taxonomy:        entity.TaxonomyPlan{Categories: categories},
		Pages:           pages,
		ContentTypes:    contentTypes,
		DecisionProfile: profile,
		GeneratedAt:     time.Now().UTC(),
	}
}

// Save 构建并追加一个新蓝图版本；版本号由存储层原子分配
func (s *Service) Save(ctx context.Context, siteID, notes string) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.Save")
	defer span.End()

	site, err := s.loadSite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	bp := s.buildFromSite(site)
	bp.Notes = notes

	version, err := s.blueprints.CreateVersion(ctx, bp)
	if err != nil {
		metrics.BlueprintSavedTotal.WithLabelValues("error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save blueprint")
	}
	metrics.BlueprintSavedTotal.WithLabelValues("success").Inc()

	if s.audit != nil {
		if _, err := s.audit.PublishBlueprintSaved(ctx, &messaging.BlueprintSavedMessage{
			SiteID:      siteID,
			BlueprintID: bp.ID,
			Version:     version,
		}); err != nil {
			logger.Warn(ctx, "failed to publish blueprint audit event", "site_id", siteID, "error", err)
		}
	}

	logger.Info(ctx, "blueprint version saved", "site_id", siteID, "version", version)
	return bp, nil
}

// GetActive 返回站点的生效蓝图。站点没有生效指针不是错误，
// exists 为 false 让调用方决定下一步（通常是先 save + activate）。
func (s *Service) GetActive(ctx context.Context, siteID string) (bp *entity.SiteBlueprint, exists bool, err error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.GetActive")
	defer span.End()

	site, err := s.loadSite(ctx, siteID)
	if err != nil {
		return nil, false, err
	}
	if site.ActiveBlueprintID == nil {
		return nil, false, nil
	}

	bp, err = s.blueprints.GetByID(ctx, *site.ActiveBlueprintID)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load blueprint")
	}
	if bp == nil {
		// 指针悬空：蓝图被外部删除，按未激活处理
		return nil, false, nil
	}
	return bp, true, nil
}

// GetByVersion 按版本号获取蓝图
func (s *Service) GetByVersion(ctx context.Context, siteID string, version int) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.GetByVersion")
	defer span.End()

	if _, err := s.loadSite(ctx, siteID); err != nil {
		return nil, err
	}

	bp, err := s.blueprints.GetByVersion(ctx, siteID, version)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load blueprint")
	}
	if bp == nil {
		return nil, apperrors.ErrBlueprintNotFound
	}
	return bp, nil
}

// List 获取站点全部蓝图版本（新版本在前）
func (s *Service) List(ctx context.Context, siteID string) ([]*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.List")
	defer span.End()

	if _, err := s.loadSite(ctx, siteID); err != nil {
		return nil, err
	}

	bps, err := s.blueprints.ListBySite(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list blueprints")
	}
	return bps, nil
}

// Activate 把站点的生效指针移动到指定版本
func (s *Service) Activate(ctx context.Context, siteID string, version int) (*entity.SiteBlueprint, error) {
	ctx, span := tracer.Start(ctx, "blueprint.Service.Activate")
	defer span.End()

	bp, err := s.GetByVersion(ctx, siteID, version)
	if err != nil {
		return nil, err
	}

	if err := s.sites.SetActiveBlueprint(ctx, siteID, bp.ID); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to activate blueprint")
	}

	logger.Info(ctx, "blueprint activated", "site_id", siteID, "version", version)
	return bp, nil
}
