// Package site 实现站点（租户单元）的管理服务
package site

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/logger"
)

var tracer = otel.Tracer("site")

// ResolveCacheInvalidator 域名解析缓存失效
type ResolveCacheInvalidator interface {
	InvalidateResolve(ctx context.Context, hostnames ...string) error
}

// CreateInput 创建站点输入
type CreateInput struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Hostnames       []string `json:"hostnames"`
	SiteType        string   `json:"site_type"`
	AutomationLevel string   `json:"automation_level"`
	AmbitionLevel   string   `json:"ambition_level"`
	Language        string   `json:"language"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
}

// UpdateInput 更新站点输入；nil 字段表示不修改
type UpdateInput struct {
	Name            *string   `json:"name"`
	Hostnames       *[]string `json:"hostnames"`
	SiteType        *string   `json:"site_type"`
	AutomationLevel *string   `json:"automation_level"`
	AmbitionLevel   *string   `json:"ambition_level"`
	Language        *string   `json:"language"`
	Country         *string   `json:"country"`
	Description     *string   `json:"description"`
	Status          *string   `json:"status"`
}

// Service 站点管理服务
type Service struct {
	sites repository.SiteRepository
	cache ResolveCacheInvalidator
}

// NewService 创建站点管理服务
func NewService(sites repository.SiteRepository, cache ResolveCacheInvalidator) *Service {
	return &Service{
		sites: sites,
		cache: cache,
	}
}

// Create 创建站点
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "site.Service.Create")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(strings.ToLower(in.Slug))
	if in.Name == "" || in.Slug == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "name and slug are required")
	}

	exists, err := s.sites.ExistsBySlug(ctx, in.Slug)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to check site slug")
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeConflict, "site slug already exists")
	}

	site := entity.NewSite(in.Name, in.Slug)
	site.Hostnames = normalizeHostnames(in.Hostnames)
	site.Country = in.Country
	site.Description = in.Description
	if in.Language != "" {
		site.Language = in.Language
	}

	// 未知枚举值保留字符串原样：决策引擎对未知值有确定的默认权重，
	// 在入口硬性拒绝会阻断后续新增类型的灰度
	if in.SiteType != "" {
		site.SiteType = entity.SiteType(in.SiteType)
	}
	if in.AutomationLevel != "" {
		site.AutomationLevel = entity.AutomationLevel(in.AutomationLevel)
	}
	if in.AmbitionLevel != "" {
		site.AmbitionLevel = entity.AmbitionLevel(in.AmbitionLevel)
	}

	if err := s.sites.Create(ctx, site); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create site")
	}

	logger.Info(ctx, "site created", "site_id", site.ID, "slug", site.Slug)
	return site, nil
}

// Get 获取站点
func (s *Service) Get(ctx context.Context, siteID string) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "site.Service.Get")
	defer span.End()

	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load site")
	}
	if site == nil {
		return nil, apperrors.ErrSiteNotFound
	}
	return site, nil
}

// List 获取站点列表
func (s *Service) List(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.Site], error) {
	ctx, span := tracer.Start(ctx, "site.Service.List")
	defer span.End()

	result, err := s.sites.List(ctx, pagination)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list sites")
	}
	return result, nil
}

// Update 更新站点；域名绑定变更会同时失效新旧主机名的解析缓存
func (s *Service) Update(ctx context.Context, siteID string, in UpdateInput) (*entity.Site, error) {
	ctx, span := tracer.Start(ctx, "site.Service.Update")
	defer span.End()

	site, err := s.Get(ctx, siteID)
	if err != nil {
		return nil, err
	}

	staleHostnames := site.Hostnames

	if in.Name != nil {
		site.Name = strings.TrimSpace(*in.Name)
	}
	if in.Hostnames != nil {
		site.Hostnames = normalizeHostnames(*in.Hostnames)
	}
	if in.SiteType != nil {
		site.SiteType = entity.SiteType(*in.SiteType)
	}
	if in.AutomationLevel != nil {
		site.AutomationLevel = entity.AutomationLevel(*in.AutomationLevel)
	}
	if in.AmbitionLevel != nil {
		site.AmbitionLevel = entity.AmbitionLevel(*in.AmbitionLevel)
	}
	if in.Language != nil {
		site.Language = *in.Language
	}
	if in.Country != nil {
		site.Country = *in.Country
	}
	if in.Description != nil {
		site.Description = *in.Description
	}
	if in.Status != nil {
		site.Status = entity.SiteStatus(*in.Status)
	}

	if err := s.sites.Update(ctx, site); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update site")
	}

	s.invalidateResolve(ctx, append(staleHostnames, site.Hostnames...))

	logger.Info(ctx, "site updated", "site_id", site.ID)
	return site, nil
}

// Delete 删除站点
func (s *Service) Delete(ctx context.Context, siteID string) error {
	ctx, span := tracer.Start(ctx, "site.Service.Delete")
	defer span.End()

	site, err := s.Get(ctx, siteID)
	if err != nil {
		return err
	}

	if err := s.sites.Delete(ctx, siteID); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete site")
	}

	s.invalidateResolve(ctx, site.Hostnames)

	logger.Info(ctx, "site deleted", "site_id", siteID)
	return nil
}

// invalidateResolve 缓存失效失败只记日志，TTL 会兜底
func (s *Service) invalidateResolve(ctx context.Context, hostnames []string) {
	if s.cache == nil || len(hostnames) == 0 {
		return
	}
	if err := s.cache.InvalidateResolve(ctx, hostnames...); err != nil {
		logger.Warn(ctx, "failed to invalidate resolve cache", "error", err)
	}
}

// normalizeHostnames 小写去空白，丢弃空项
func normalizeHostnames(hostnames []string) []string {
	out := make([]string, 0, len(hostnames))
	for _, h := range hostnames {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}
