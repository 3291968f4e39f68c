package setup

import (
	"context"
	"testing"
	"time"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	"foundry-cms-api/internal/infrastructure/messaging"
	apperrors "foundry-cms-api/pkg/errors"
)

// --- 内存假实现 ---

type fakeSiteRepo struct {
	sites map[string]*entity.Site
}

func (f *fakeSiteRepo) Create(ctx context.Context, site *entity.Site) error { return nil }
func (f *fakeSiteRepo) GetByID(ctx context.Context, id string) (*entity.Site, error) {
	return f.sites[id], nil
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

type fakeBlueprintRepo struct {
	byID map[string]*entity.SiteBlueprint
}

func (f *fakeBlueprintRepo) CreateVersion(ctx context.Context, bp *entity.SiteBlueprint) (int, error) {
	return 0, nil
}
func (f *fakeBlueprintRepo) GetByID(ctx context.Context, id string) (*entity.SiteBlueprint, error) {
	return f.byID[id], nil
}
func (f *fakeBlueprintRepo) GetByVersion(ctx context.Context, siteID string, version int) (*entity.SiteBlueprint, error) {
	return nil, nil
}
func (f *fakeBlueprintRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.SiteBlueprint, error) {
	return nil, nil
}
func (f *fakeBlueprintRepo) CountBySite(ctx context.Context, siteID string) (int64, error) {
	return 0, nil
}

type fakeAuthorRepo struct {
	byRoleKey map[string]*entity.Author
}

func (f *fakeAuthorRepo) InsertMissing(ctx context.Context, siteID string, authors []*entity.Author) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, a := range authors {
		if _, ok := f.byRoleKey[a.RoleKey]; ok {
			outcome.Skipped++
			continue
		}
		f.byRoleKey[a.RoleKey] = a
		outcome.Created++
	}
	return outcome, nil
}
func (f *fakeAuthorRepo) RoleKeys(ctx context.Context, siteID string) ([]string, error) {
	keys := make([]string, 0, len(f.byRoleKey))
	for k := range f.byRoleKey {
		keys = append(keys, k)
	}
	return keys, nil
}
func (f *fakeAuthorRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Author, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	bySlug map[string]*entity.Category
}

func (f *fakeCategoryRepo) InsertMissing(ctx context.Context, siteID string, categories []*entity.Category) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, c := range categories {
		if _, ok := f.bySlug[c.Slug]; ok {
			outcome.Skipped++
			continue
		}
		f.bySlug[c.Slug] = c
		outcome.Created++
	}
	return outcome, nil
}
func (f *fakeCategoryRepo) Slugs(ctx context.Context, siteID string) ([]string, error) {
	slugs := make([]string, 0, len(f.bySlug))
	for s := range f.bySlug {
		slugs = append(slugs, s)
	}
	return slugs, nil
}
func (f *fakeCategoryRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error) {
	return nil, nil
}

type fakePageRepo struct {
	byType map[entity.PageType]*entity.Page
}

func (f *fakePageRepo) InsertMissing(ctx context.Context, siteID string, pages []*entity.Page) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, p := range pages {
		if _, ok := f.byType[p.Type]; ok {
			outcome.Skipped++
			continue
		}
		f.byType[p.Type] = p
		outcome.Created++
	}
	return outcome, nil
}
func (f *fakePageRepo) Types(ctx context.Context, siteID string) ([]entity.PageType, error) {
	types := make([]entity.PageType, 0, len(f.byType))
	for t := range f.byType {
		types = append(types, t)
	}
	return types, nil
}
func (f *fakePageRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Page, error) {
	return nil, nil
}

type fakeContentTypeRepo struct {
	byKey map[string]*entity.ContentType
}

func (f *fakeContentTypeRepo) InsertMissing(ctx context.Context, siteID string, types []*entity.ContentType) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, t := range types {
		if _, ok := f.byKey[t.Key]; ok {
			outcome.Skipped++
			continue
		}
		f.byKey[t.Key] = t
		outcome.Created++
	}
	return outcome, nil
}
func (f *fakeContentTypeRepo) Keys(ctx context.Context, siteID string) ([]string, error) {
	keys := make([]string, 0, len(f.byKey))
	for k := range f.byKey {
		keys = append(keys, k)
	}
	return keys, nil
}
func (f *fakeContentTypeRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.ContentType, error) {
	return nil, nil
}

type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLock struct {
	denied   bool
	acquires int
	releases int
}

func (f *fakeLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	f.acquires++
	if f.denied {
		return "", false, nil
	}
	return "token", true, nil
}
func (f *fakeLock) Release(ctx context.Context, key, token string) error {
	f.releases++
	return nil
}

type fakeAudit struct {
	events []*messaging.SetupAppliedMessage
}

func (f *fakeAudit) PublishSetupApplied(ctx context.Context, event *messaging.SetupAppliedMessage) (string, error) {
	f.events = append(f.events, event)
	return "1-0", nil
}

// --- 测试夹具 ---

type fixture struct {
	svc     *Service
	lock    *fakeLock
	audit   *fakeAudit
	authors *fakeAuthorRepo
	pages   *fakePageRepo
}

func newFixture(t *testing.T, withActiveBlueprint bool) *fixture {
	t.Helper()

	site := &entity.Site{
		ID:   "site-1",
		Name: "Otaku Hebdo",
		Slug: "otaku-hebdo",
	}
	bp := &entity.SiteBlueprint{
		ID:      "bp-1",
		SiteID:  "site-1",
		Version: 3,
		Authors: []entity.AuthorPlanItem{
			{RoleKey: "editorial_lead", DisplayName: "Rédaction Otaku Hebdo", Slug: "redaction-otaku-hebdo", IsAI: true},
			{RoleKey: "specialist_anime_manga", DisplayName: "Spécialiste Anime & Manga", Slug: "specialiste-anime-manga", IsAI: true},
		},
		Taxonomy: entity.TaxonomyPlan{Categories: []entity.CategoryPlanItem{
			{Name: "Anime", Slug: "anime", Order: 0},
			{Name: "Manga", Slug: "manga", Order: 1},
		}},
		Pages: []entity.PagePlanItem{
			{Type: entity.PageTypeAbout, Title: "À propos", Slug: "a-propos"},
			{Type: entity.PageTypeContact, Title: "Contact", Slug: "contact"},
		},
		ContentTypes: []entity.ContentTypePlanItem{
			{Key: "article", Name: "Article", Order: 0},
		},
	}
	if withActiveBlueprint {
		id := bp.ID
		site.ActiveBlueprintID = &id
	}

	lock := &fakeLock{}
	audit := &fakeAudit{}
	authors := &fakeAuthorRepo{byRoleKey: map[string]*entity.Author{}}
	pages := &fakePageRepo{byType: map[entity.PageType]*entity.Page{}}

	svc := NewService(
		&fakeSiteRepo{sites: map[string]*entity.Site{site.ID: site}},
		authors,
		&fakeCategoryRepo{bySlug: map[string]*entity.Category{}},
		pages,
		&fakeContentTypeRepo{byKey: map[string]*entity.ContentType{}},
		&fakeBlueprintRepo{byID: map[string]*entity.SiteBlueprint{bp.ID: bp}},
		fakeTx{},
		lock,
		audit,
		30*time.Second,
		func(siteID string) string { return "lock:setup:" + siteID },
	)
	return &fixture{svc: svc, lock: lock, audit: audit, authors: authors, pages: pages}
}

// --- 测试 ---

func TestApplyAuthorsIdempotent(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)
	ctx := context.Background()

	first, err := fx.svc.ApplyAuthors(ctx, "site-1")
	if err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if first.Created != 2 || first.Skipped != 0 {
		t.Fatalf("first apply: created=%d skipped=%d, want 2/0", first.Created, first.Skipped)
	}
	if first.BlueprintVersion != 3 {
		t.Fatalf("blueprint version = %d, want 3", first.BlueprintVersion)
	}

	second, err := fx.svc.ApplyAuthors(ctx, "site-1")
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if second.Created != 0 {
		t.Fatalf("second apply created %d rows, apply must be idempotent", second.Created)
	}

	if fx.lock.releases != fx.lock.acquires {
		t.Fatalf("lock leaked: %d acquires, %d releases", fx.lock.acquires, fx.lock.releases)
	}
}

func TestApplyPublishesAuditEvent(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)
	if _, err := fx.svc.ApplyPages(context.Background(), "site-1"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if len(fx.audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(fx.audit.events))
	}
	evt := fx.audit.events[0]
	if evt.Kind != string(KindPages) || evt.SiteID != "site-1" || evt.Created != 2 {
		t.Fatalf("unexpected audit event: %+v", evt)
	}
}

func TestApplyRejectedWhileLocked(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)
	fx.lock.denied = true

	_, err := fx.svc.ApplyTaxonomy(context.Background(), "site-1")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeSetupInProgress {
		t.Fatalf("error code = %s, want %s", appErr.Code, apperrors.CodeSetupInProgress)
	}
}

func TestApplyRequiresActiveBlueprint(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, false)

	_, err := fx.svc.ApplyContentTypes(context.Background(), "site-1")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNoActiveBlueprint {
		t.Fatalf("error code = %s, want %s", appErr.Code, apperrors.CodeNoActiveBlueprint)
	}
}

func TestApplyUnknownSite(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)

	_, err := fx.svc.ApplyAuthors(context.Background(), "missing")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeSiteNotFound {
		t.Fatalf("error code = %s, want %s", appErr.Code, apperrors.CodeSiteNotFound)
	}
}

func TestPreviewIsReadOnly(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)
	ctx := context.Background()

	missing, err := fx.svc.PreviewAuthors(ctx, "site-1")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing authors, got %d", len(missing))
	}
	if len(fx.authors.byRoleKey) != 0 {
		t.Fatalf("preview inserted rows")
	}
	if fx.lock.acquires != 0 {
		t.Fatalf("preview must not take the setup lock")
	}
}

func TestPreviewShrinksAfterPartialState(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, true)
	ctx := context.Background()

	// 站点已有主编，preview 只剩专栏作者
	fx.authors.byRoleKey["editorial_lead"] = &entity.Author{RoleKey: "editorial_lead"}

	missing, err := fx.svc.PreviewAuthors(ctx, "site-1")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if len(missing) != 1 || missing[0].RoleKey != "specialist_anime_manga" {
		t.Fatalf("unexpected preview diff: %+v", missing)
	}
}
