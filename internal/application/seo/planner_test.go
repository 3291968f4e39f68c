package seo

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	apperrors "foundry-cms-api/pkg/errors"
)

type fakeSiteRepo struct {
	site *entity.Site
}

func (f *fakeSiteRepo) Create(ctx context.Context, site *entity.Site) error { return nil }
func (f *fakeSiteRepo) GetByID(ctx context.Context, id string) (*entity.Site, error) {
	if f.site != nil && f.site.ID == id {
		return f.site, nil
	}
	return nil, nil
}
func (f *fakeSiteRepo) GetBySlug(ctx context.Context, slug string) (*entity.Site, error) {
	return nil, nil
}
func (f *fakeSiteRepo) GetByHostname(ctx context.Context, hostname string) (*entity.Site, error) {
	return nil, nil
}
func (f *fakeSiteRepo) Update(ctx context.Context, site *entity.Site) error { return nil }
func (f *fakeSiteRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakeSiteRepo) List(ctx context.Context, p repository.Pagination) (*repository.PagedResult[*entity.Site], error) {
	return nil, nil
}
func (f *fakeSiteRepo) SetActiveBlueprint(ctx context.Context, siteID, blueprintID string) error {
	return nil
}
func (f *fakeSiteRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

type fakeContentRepo struct {
	contents []*entity.Content
}

func (f *fakeContentRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Content, error) {
	return f.contents, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) InsertMissing(ctx context.Context, siteID string, categories []*entity.Category) (*repository.InsertOutcome, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Slugs(ctx context.Context, siteID string) ([]string, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error) {
	return f.categories, nil
}

type fakeSeoRepo struct {
	rows map[entity.SeoTargetKind]map[string]*entity.SeoMeta
}

func newFakeSeoRepo() *fakeSeoRepo {
	return &fakeSeoRepo{rows: map[entity.SeoTargetKind]map[string]*entity.SeoMeta{}}
}

func (f *fakeSeoRepo) InsertMissing(ctx context.Context, siteID string, metas []*entity.SeoMeta) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, m := range metas {
		if f.rows[m.TargetKind] == nil {
			f.rows[m.TargetKind] = map[string]*entity.SeoMeta{}
		}
		if _, ok := f.rows[m.TargetKind][m.TargetID]; ok {
			outcome.Skipped++
			continue
		}
		f.rows[m.TargetKind][m.TargetID] = m
		outcome.Created++
	}
	return outcome, nil
}

func (f *fakeSeoRepo) CoveredTargets(ctx context.Context, siteID string) (map[entity.SeoTargetKind]map[string]bool, error) {
	covered := map[entity.SeoTargetKind]map[string]bool{}
	for kind, byID := range f.rows {
		covered[kind] = map[string]bool{}
		for id := range byID {
			covered[kind][id] = true
		}
	}
	return covered, nil
}

type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newPlanner(seoRepo *fakeSeoRepo) *Planner {
	site := &entity.Site{
		ID:          "site-1",
		Name:        "Otaku Hebdo",
		Description: "Le magazine anime et manga de référence",
	}
	contents := []*entity.Content{
		{ID: "c-1", SiteID: "site-1", Title: "Top anime 2026", Excerpt: "Notre sélection de la saison"},
		{ID: "c-2", SiteID: "site-1", Title: "Dossier studio", Body: strings.Repeat("a", 400)},
	}
	categories := []*entity.Category{
		{ID: "t-1", SiteID: "site-1", Name: "Anime", Slug: "anime"},
	}
	return NewPlanner(
		&fakeSiteRepo{site: site},
		&fakeContentRepo{contents: contents},
		&fakeCategoryRepo{categories: categories},
		seoRepo,
		fakeTx{},
	)
}

func TestBuildPlanDefaults(t *testing.T) {
	t.Parallel()

	p := newPlanner(newFakeSeoRepo())
	plan, err := p.BuildPlan(context.Background(), "site-1")
	if err != nil {
		t.Fatalf("build plan failed: %v", err)
	}

	if plan.Site == nil {
		t.Fatalf("plan must include the site row")
	}
	if plan.Site.Title != "Otaku Hebdo" {
		t.Fatalf("site seo title = %q", plan.Site.Title)
	}
	if !plan.Site.RobotsIndex || !plan.Site.RobotsFollow {
		t.Fatalf("robots defaults must be index+follow")
	}

	if len(plan.Contents) != 2 {
		t.Fatalf("expected 2 content rows, got %d", len(plan.Contents))
	}
	if plan.Contents[0].Title != "Top anime 2026 | Otaku Hebdo" {
		t.Fatalf("content seo title = %q", plan.Contents[0].Title)
	}
	// 摘要优先于正文
	if plan.Contents[0].Description != "Notre sélection de la saison" {
		t.Fatalf("content seo description = %q", plan.Contents[0].Description)
	}
	// 无摘要时取正文前 155 个字符
	if got := utf8.RuneCountInString(plan.Contents[1].Description); got != 155 {
		t.Fatalf("truncated description length = %d, want 155", got)
	}

	if len(plan.Terms) != 1 || plan.Terms[0].Title != "Anime | Otaku Hebdo" {
		t.Fatalf("unexpected term rows: %+v", plan.Terms)
	}
	if plan.Size() != 4 {
		t.Fatalf("plan size = %d, want 4", plan.Size())
	}
}

func TestBuildPlanExcludesCoveredTargets(t *testing.T) {
	t.Parallel()

	seoRepo := newFakeSeoRepo()
	seoRepo.rows[entity.SeoTargetContent] = map[string]*entity.SeoMeta{
		"c-1": {TargetKind: entity.SeoTargetContent, TargetID: "c-1"},
	}

	p := newPlanner(seoRepo)
	plan, err := p.BuildPlan(context.Background(), "site-1")
	if err != nil {
		t.Fatalf("build plan failed: %v", err)
	}

	if len(plan.Contents) != 1 || plan.Contents[0].TargetID != "c-2" {
		t.Fatalf("covered content leaked into the plan: %+v", plan.Contents)
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	seoRepo := newFakeSeoRepo()
	p := newPlanner(seoRepo)
	ctx := context.Background()

	first, err := p.Apply(ctx, "site-1")
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if first.Created != 4 || first.Skipped != 0 {
		t.Fatalf("first apply: created=%d skipped=%d, want 4/0", first.Created, first.Skipped)
	}

	second, err := p.Apply(ctx, "site-1")
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if second.Created != 0 || second.Skipped != 0 {
		t.Fatalf("second apply: created=%d skipped=%d, plan must exclude covered targets", second.Created, second.Skipped)
	}
}

func TestBuildPlanUnknownSite(t *testing.T) {
	t.Parallel()

	p := newPlanner(newFakeSeoRepo())
	_, err := p.BuildPlan(context.Background(), "missing")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeSiteNotFound {
		t.Fatalf("error code = %s, want %s", appErr.Code, apperrors.CodeSiteNotFound)
	}
}
