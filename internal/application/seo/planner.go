// Package seo 实现 SEO 元数据的默认值引导
package seo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/logger"
)

var tracer = otel.Tracer("seo")

// 描述截断长度，与常见 SERP 摘要长度对齐
const descriptionMaxRunes = 155

// Plan SEO 引导计划：只包含尚无 SEO 行的目标，
// 因此 apply 重复执行必然是 no-op（构造层面的幂等）。
type Plan struct {
	Site     *entity.SeoMeta   `json:"site,omitempty"`
	Contents []*entity.SeoMeta `json:"contents"`
	Terms    []*entity.SeoMeta `json:"terms"`
}

// Size 计划中的行数
func (p *Plan) Size() int {
	n := len(p.Contents) + len(p.Terms)
	if p.Site != nil {
		n++
	}
	return n
}

// rows 展平为插入顺序
func (p *Plan) rows() []*entity.SeoMeta {
	rows := make([]*entity.SeoMeta, 0, p.Size())
	if p.Site != nil {
		rows = append(rows, p.Site)
	}
	rows = append(rows, p.Contents...)
	rows = append(rows, p.Terms...)
	return rows
}

// ApplyResult SEO 引导应用结果
type ApplyResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Planner SEO 引导规划器
type Planner struct {
	sites      repository.SiteRepository
	contents   repository.ContentRepository
	categories repository.CategoryRepository
	seo        repository.SeoRepository
	tx         repository.Transactor
}

// NewPlanner 创建 SEO 引导规划器
func NewPlanner(
	sites repository.SiteRepository,
	contents repository.ContentRepository,
	categories repository.CategoryRepository,
	seo repository.SeoRepository,
	tx repository.Transactor,
) *Planner {
	return &Planner{
		sites:      sites,
		contents:   contents,
		categories: categories,
		seo:        seo,
		tx:         tx,
	}
}

// BuildPlan 为站点本身以及缺少 SEO 行的内容/分类生成默认元数据
func (p *Planner) BuildPlan(ctx context.Context, siteID string) (*Plan, error) {
	ctx, span := tracer.Start(ctx, "seo.Planner.BuildPlan")
	defer span.End()

	site, err := p.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load site")
	}
	if site == nil {
		return nil, apperrors.ErrSiteNotFound
	}

	covered, err := p.seo.CoveredTargets(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list covered seo targets")
	}

	plan := &Plan{
		Contents: []*entity.SeoMeta{},
		Terms:    []*entity.SeoMeta{},
	}

	if !covered[entity.SeoTargetSite][site.ID] {
		plan.Site = &entity.SeoMeta{
			SiteID:       siteID,
			TargetKind:   entity.SeoTargetSite,
			TargetID:     site.ID,
			Title:        site.Name,
			Description:  truncateDescription(site.Description),
			RobotsIndex:  true,
			RobotsFollow: true,
		}
	}

	contents, err := p.contents.ListBySite(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list contents")
	}
	for _, c := range contents {
		if covered[entity.SeoTargetContent][c.ID] {
			continue
		}
		desc := c.Excerpt
		if desc == "" {
			desc = c.Body
		}
		plan.Contents = append(plan.Contents, &entity.SeoMeta{
			SiteID:       siteID,
			TargetKind:   entity.SeoTargetContent,
			TargetID:     c.ID,
			Title:        fmt.Sprintf("%s | %s", c.Title, site.Name),
			Description:  truncateDescription(desc),
			RobotsIndex:  true,
			RobotsFollow: true,
		})
	}

	categories, err := p.categories.ListBySite(ctx, siteID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list categories")
	}
	for _, t := range categories {
		if covered[entity.SeoTargetTerm][t.ID] {
			continue
		}
		plan.Terms = append(plan.Terms, &entity.SeoMeta{
			SiteID:       siteID,
			TargetKind:   entity.SeoTargetTerm,
			TargetID:     t.ID,
			Title:        fmt.Sprintf("%s | %s", t.Name, site.Name),
			RobotsIndex:  true,
			RobotsFollow: true,
		})
	}

	return plan, nil
}

// Apply 重新规划并插入缺失的 SEO 行。只插入，不更新不删除；
// 即便与另一次 apply 并发竞争，唯一约束也会把重复行降级为跳过。
func (p *Planner) Apply(ctx context.Context, siteID string) (*ApplyResult, error) {
	ctx, span := tracer.Start(ctx, "seo.Planner.Apply")
	defer span.End()

	plan, err := p.BuildPlan(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var outcome *repository.InsertOutcome
	err = p.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		outcome, txErr = p.seo.InsertMissing(ctx, siteID, plan.rows())
		return txErr
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeApplyFailed, "failed to apply seo plan")
	}

	logger.Info(ctx, "seo bootstrap applied",
		"site_id", siteID,
		"created", outcome.Created,
		"skipped", outcome.Skipped,
	)
	return &ApplyResult{Created: outcome.Created, Skipped: outcome.Skipped}, nil
}

// truncateDescription 裁剪为最多 155 个字符（按 rune 计数，避免截断多字节字符）
func truncateDescription(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= descriptionMaxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:descriptionMaxRunes])
}
