// Package setup 实现站点结构初始化的 preview/apply 服务
package setup

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"foundry-cms-api/internal/application/plan"
	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	"foundry-cms-api/internal/infrastructure/messaging"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/logger"
	"foundry-cms-api/pkg/metrics"
)

var tracer = otel.Tracer("setup")

// Kind 初始化操作针对的实体种类
type Kind string

const (
	KindAuthors      Kind = "authors"
	KindTaxonomy     Kind = "taxonomy"
	KindPages        Kind = "pages"
	KindContentTypes Kind = "content_types"
)

// Locker 每站点互斥锁
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	Release(ctx context.Context, key, token string) error
}

// AuditPublisher 审计事件发布
type AuditPublisher interface {
	PublishSetupApplied(ctx context.Context, event *messaging.SetupAppliedMessage) (string, error)
}

// ApplyResult 应用结果：created/skipped 由存储层的自然键冲突检测计出
type ApplyResult struct {
	Kind             Kind  `json:"kind"`
	Created          int   `json:"created"`
	Skipped          int   `json:"skipped"`
	BlueprintVersion int   `json:"blueprint_version"`
	DurationMs       int64 `json:"duration_ms"`
}

// Service 初始化服务。preview 只读，apply 只插入缺失集合；
// 同一站点的 apply 由分布式锁串行化，锁竞争失败直接拒绝而非排队。
type Service struct {
	sites        repository.SiteRepository
	authors      repository.AuthorRepository
	categories   repository.CategoryRepository
	pages        repository.PageRepository
	contentTypes repository.ContentTypeRepository
	blueprints   repository.BlueprintRepository
	tx           repository.Transactor
	lock         Locker
	audit        AuditPublisher
	lockTTL      time.Duration
	lockKeyFn    func(siteID string) string
}

// NewService 创建初始化服务
func NewService(
	sites repository.SiteRepository,
	authors repository.AuthorRepository,
	categories repository.CategoryRepository,
	pages repository.PageRepository,
	contentTypes repository.ContentTypeRepository,
	blueprints repository.BlueprintRepository,
	tx repository.Transactor,
	lock Locker,
	audit AuditPublisher,
	lockTTL time.Duration,
	lockKeyFn func(siteID string) string,
) *Service {
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &Service{
		sites:        sites,
		authors:      authors,
		categories:   categories,
		pages:        pages,
		contentTypes: contentTypes,
		blueprints:   blueprints,
		tx:           tx,
		lock:         lock,
		audit:        audit,
		lockTTL:      lockTTL,
		lockKeyFn:    lockKeyFn,
	}
}

// loadActiveBlueprint 读取站点及其生效蓝图。
// 没有生效指针是前置条件错误（需要先 save + activate），不是服务端故障。
func (s *Service) loadActiveBlueprint(ctx context.Context, siteID string) (*entity.Site, *entity.SiteBlueprint, error) {
	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load site")
	}
	if site == nil {
		return nil, nil, apperrors.ErrSiteNotFound
	}
	if site.ActiveBlueprintID == nil {
		return nil, nil, apperrors.ErrNoActiveBlueprint
	}

	bp, err := s.blueprints.GetByID(ctx, *site.ActiveBlueprintID)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load blueprint")
	}
	if bp == nil {
		return nil, nil, apperrors.ErrBlueprintNotFound
	}
	return site, bp, nil
}

// PreviewAuthors 计算尚未持久化的作者计划项
func (s *Service) PreviewAuthors(ctx context.Context, siteID string) ([]entity.AuthorPlanItem, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.PreviewAuthors")
	defer span.End()

	_, bp, err := s.loadActiveBlueprint(ctx, siteID)
	if err != nil {
		return nil, err
	}
	existing, err := s.authors.RoleKeys(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list author role keys")
	}
	return plan.FilterMissingAuthors(bp.Authors, existing), nil
}

// ApplyAuthors 插入缺失的作者
func (s *Service) ApplyAuthors(ctx context.Context, siteID string) (*ApplyResult, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.ApplyAuthors")
	defer span.End()

	return s.apply(ctx, siteID, KindAuthors, func(ctx context.Context, bp *entity.SiteBlueprint) (*repository.InsertOutcome, error) {
		existing, err := s.authors.RoleKeys(ctx, siteID)
		if err != nil {
			return nil, err
		}
		missing := plan.FilterMissingAuthors(bp.Authors, existing)

		rows := make([]*entity.Author, len(missing))
		for i, it := range missing {
			rows[i] = &entity.Author{
				RoleKey:     it.RoleKey,
				DisplayName: it.DisplayName,
				Slug:        it.Slug,
				Specialties: it.Specialties,
				IsAI:        it.IsAI,
			}
		}
		return s.authors.InsertMissing(ctx, siteID, rows)
	})
}

// PreviewTaxonomy 计算尚未持久化的分类计划项
func (s *Service) PreviewTaxonomy(ctx context.Context, siteID string) ([]entity.CategoryPlanItem, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.PreviewTaxonomy")
	defer span.End()

	_, bp, err := s.loadActiveBlueprint(ctx, siteID)
	if err != nil {
		return nil, err
	}
	existing, err := s.categories.Slugs(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list category slugs")
	}
	return plan.FilterMissingCategories(bp.Taxonomy.Categories, existing), nil
}

// ApplyTaxonomy 插入缺失的分类
func (s *Service) ApplyTaxonomy(ctx context.Context, siteID string) (*ApplyResult, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.ApplyTaxonomy")
	defer span.End()

	return s.apply(ctx, siteID, KindTaxonomy, func(ctx context.Context, bp *entity.SiteBlueprint) (*repository.InsertOutcome, error) {
		existing, err := s.categories.Slugs(ctx, siteID)
		if err != nil {
			return nil, err
		}
		missing := plan.FilterMissingCategories(bp.Taxonomy.Categories, existing)

		rows := make([]*entity.Category, len(missing))
		for i, it := range missing {
			rows[i] = &entity.Category{
				Name:       it.Name,
				Slug:       it.Slug,
				ParentSlug: it.ParentSlug,
				Position:   it.Order,
			}
		}
		return s.categories.InsertMissing(ctx, siteID, rows)
	})
}

// PreviewPages 计算尚未持久化的页面计划项
func (s *Service) PreviewPages(ctx context.Context, siteID string) ([]entity.PagePlanItem, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.PreviewPages")
	defer span.End()

	_, bp, err := s.loadActiveBlueprint(ctx, siteID)
	if err != nil {
		return nil, err
	}
	existing, err := s.pages.Types(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list page types")
	}
	return plan.FilterMissingPages(bp.Pages, existing), nil
}

// ApplyPages 插入缺失的页面
func (s *Service) ApplyPages(ctx context.Context, siteID string) (*ApplyResult, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.ApplyPages")
	defer span.End()

	return s.apply(ctx, siteID, KindPages, func(ctx context.Context, bp *entity.SiteBlueprint) (*repository.InsertOutcome, error) {
		existing, err := s.pages.Types(ctx, siteID)
		if err != nil {
			return nil, err
		}
		missing := plan.FilterMissingPages(bp.Pages, existing)

		rows := make([]*entity.Page, len(missing))
		for i, it := range missing {
			rows[i] = &entity.Page{
				Type:        it.Type,
				Title:       it.Title,
				Slug:        it.Slug,
				ContentHTML: it.ContentHTML,
				Status:      entity.PageStatusPublished,
			}
		}
		return s.pages.InsertMissing(ctx, siteID, rows)
	})
}

// PreviewContentTypes 计算尚未持久化的内容类型计划项
func (s *Service) PreviewContentTypes(ctx context.Context, siteID string) ([]entity.ContentTypePlanItem, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.PreviewContentTypes")
	defer span.End()

	_, bp, err := s.loadActiveBlueprint(ctx, siteID)
	if err != nil {
		return nil, err
	}
	existing, err := s.contentTypes.Keys(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list content type keys")
	}
	return plan.FilterMissingContentTypes(bp.ContentTypes, existing), nil
}

// ApplyContentTypes 插入缺失的内容类型
func (s *Service) ApplyContentTypes(ctx context.Context, siteID string) (*ApplyResult, error) {
	ctx, span := tracer.Start(ctx, "setup.Service.ApplyContentTypes")
	defer span.End()

	return s.apply(ctx, siteID, KindContentTypes, func(ctx context.Context, bp *entity.SiteBlueprint) (*repository.InsertOutcome, error) {
		existing, err := s.contentTypes.Keys(ctx, siteID)
		if err != nil {
			return nil, err
		}
		missing := plan.FilterMissingContentTypes(bp.ContentTypes, existing)

		rows := make([]*entity.ContentType, len(missing))
		for i, it := range missing {
			rows[i] = &entity.ContentType{
				Key:      it.Key,
				Name:     it.Name,
				Position: it.Order,
			}
		}
		return s.contentTypes.InsertMissing(ctx, siteID, rows)
	})
}

// apply 公共骨架：锁、蓝图加载、事务内插入、指标与审计。
// 即便两个调用方绕过锁并发执行，自然键唯一约束仍保证只插入一次。
func (s *Service) apply(ctx context.Context, siteID string, kind Kind, insert func(ctx context.Context, bp *entity.SiteBlueprint) (*repository.InsertOutcome, error)) (*ApplyResult, error) {
	start := time.Now()

	lockKey := s.lockKeyFn(siteID)
	token, acquired, err := s.lock.Acquire(ctx, lockKey, s.lockTTL)
	if err != nil {
		metrics.SetupApplyTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to acquire setup lock")
	}
	if !acquired {
		metrics.SetupApplyTotal.WithLabelValues(string(kind), "locked").Inc()
		return nil, apperrors.ErrSetupInProgress
	}
	defer func() {
		if err := s.lock.Release(ctx, lockKey, token); err != nil {
			logger.Warn(ctx, "failed to release setup lock", "key", lockKey, "error", err)
		}
	}()

	_, bp, err := s.loadActiveBlueprint(ctx, siteID)
	if err != nil {
		metrics.SetupApplyTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, err
	}

	var outcome *repository.InsertOutcome
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		outcome, txErr = insert(ctx, bp)
		return txErr
	})
	if err != nil {
		metrics.SetupApplyTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeApplyFailed, "failed to apply setup plan")
	}

	metrics.SetupApplyTotal.WithLabelValues(string(kind), "success").Inc()
	metrics.SetupRowsCreated.WithLabelValues(string(kind)).Add(float64(outcome.Created))

	result := &ApplyResult{
		Kind:             kind,
		Created:          outcome.Created,
		Skipped:          outcome.Skipped,
		BlueprintVersion: bp.Version,
		DurationMs:       time.Since(start).Milliseconds(),
	}

	// 审计事件是尽力而为，发布失败不回滚已插入的行
	if s.audit != nil {
		if _, err := s.audit.PublishSetupApplied(ctx, &messaging.SetupAppliedMessage{
			SiteID:      siteID,
			Kind:        string(kind),
			BlueprintID: bp.ID,
			Version:     bp.Version,
			Created:     outcome.Created,
			Skipped:     outcome.Skipped,
		}); err != nil {
			logger.Warn(ctx, "failed to publish setup audit event", "site_id", siteID, "kind", kind, "error", err)
		}
	}

	logger.Info(ctx, "setup plan applied",
		"site_id", siteID,
		"kind", kind,
		"created", outcome.Created,
		"skipped", outcome.Skipped,
		"blueprint_version", bp.Version,
	)
	return result, nil
}
