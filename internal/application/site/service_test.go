package site

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/domain/repository"
	apperrors "foundry-cms-api/pkg/errors"
)

type fakeSiteRepo struct {
	sites  map[string]*entity.Site
	nextID int
}

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{sites: map[string]*entity.Site{}}
}

func (r *fakeSiteRepo) Create(_ context.Context, site *entity.Site) error {
	r.nextID++
	site.ID = fmt.Sprintf("site-%d", r.nextID)
	r.sites[site.ID] = site
	return nil
}

func (r *fakeSiteRepo) GetByID(_ context.Context, id string) (*entity.Site, error) {
	return r.sites[id], nil
}

func (r *fakeSiteRepo) GetBySlug(_ context.Context, slug string) (*entity.Site, error) {
	for _, s := range r.sites {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSiteRepo) GetByHostname(_ context.Context, hostname string) (*entity.Site, error) {
	for _, s := range r.sites {
		for _, h := range s.Hostnames {
			if h == hostname {
				return s, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSiteRepo) Update(_ context.Context, site *entity.Site) error {
	r.sites[site.ID] = site
	return nil
}

func (r *fakeSiteRepo) Delete(_ context.Context, id string) error {
	delete(r.sites, id)
	return nil
}

func (r *fakeSiteRepo) List(_ context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.Site], error) {
	items := make([]*entity.Site, 0, len(r.sites))
	for _, s := range r.sites {
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return repository.NewPagedResult(items, int64(len(items)), pagination), nil
}

func (r *fakeSiteRepo) SetActiveBlueprint(_ context.Context, siteID, blueprintID string) error {
	s, ok := r.sites[siteID]
	if !ok {
		return fmt.Errorf("site %s not found", siteID)
	}
	s.ActiveBlueprintID = &blueprintID
	return nil
}

func (r *fakeSiteRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	s, _ := r.GetBySlug(context.Background(), slug)
	return s != nil, nil
}

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) InvalidateResolve(_ context.Context, hostnames ...string) error {
	f.invalidated = append(f.invalidated, hostnames...)
	return nil
}

func TestCreateNormalizesInput(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSiteRepo(), &fakeInvalidator{})

	site, err := svc.Create(context.Background(), CreateInput{
		Name:      "  Otaku Hebdo ",
		Slug:      " Otaku-Hebdo ",
		Hostnames: []string{" Otaku-Hebdo.FR ", "", "www.otaku-hebdo.fr"},
		SiteType:  "gaming_popculture",
		Language:  "fr",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if site.Name != "Otaku Hebdo" {
		t.Fatalf("name = %q", site.Name)
	}
	if site.Slug != "otaku-hebdo" {
		t.Fatalf("slug = %q", site.Slug)
	}
	if len(site.Hostnames) != 2 || site.Hostnames[0] != "otaku-hebdo.fr" {
		t.Fatalf("hostnames = %v", site.Hostnames)
	}
	if site.SiteType != entity.SiteTypeGamingPop {
		t.Fatalf("site type = %q", site.SiteType)
	}
	// 未设置的枚举保持实体默认值
	if site.AutomationLevel != entity.AutomationManual {
		t.Fatalf("automation = %q", site.AutomationLevel)
	}
}

func TestCreateRejectsMissingNameOrSlug(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSiteRepo(), &fakeInvalidator{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "  ", Slug: "x"})
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidParam {
		t.Fatalf("code = %v, want invalid param", appErr.Code)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSiteRepo(), &fakeInvalidator{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "A", Slug: "demo"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, CreateInput{Name: "B", Slug: "demo"})
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Fatalf("code = %v, want conflict", appErr.Code)
	}
}

func TestUpdateInvalidatesOldAndNewHostnames(t *testing.T) {
	t.Parallel()

	inv := &fakeInvalidator{}
	svc := NewService(newFakeSiteRepo(), inv)
	ctx := context.Background()

	site, err := svc.Create(ctx, CreateInput{
		Name:      "Demo",
		Slug:      "demo",
		Hostnames: []string{"old.example.com"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newHosts := []string{"new.example.com"}
	if _, err := svc.Update(ctx, site.ID, UpdateInput{Hostnames: &newHosts}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := map[string]bool{}
	for _, h := range inv.invalidated {
		got[h] = true
	}
	if !got["old.example.com"] || !got["new.example.com"] {
		t.Fatalf("invalidated = %v, want old and new hostnames", inv.invalidated)
	}
}

func TestUpdateUnchangedFieldsSurvive(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeSiteRepo(), &fakeInvalidator{})
	ctx := context.Background()

	site, err := svc.Create(ctx, CreateInput{
		Name:     "Demo",
		Slug:     "demo",
		SiteType: "news_media",
		Language: "fr",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Demo Renamed"
	updated, err := svc.Update(ctx, site.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Demo Renamed" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.SiteType != entity.SiteTypeNewsMedia || updated.Language != "fr" {
		t.Fatalf("untouched fields changed: type=%q lang=%q", updated.SiteType, updated.Language)
	}
}

func TestDeleteInvalidatesResolveCache(t *testing.T) {
	t.Parallel()

	inv := &fakeInvalidator{}
	svc := NewService(newFakeSiteRepo(), inv)
	ctx := context.Background()

	site, err := svc.Create(ctx, CreateInput{
		Name:      "Demo",
		Slug:      "demo",
		Hostnames: []string{"demo.example.com"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, site.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != "demo.example.com" {
		t.Fatalf("invalidated = %v", inv.invalidated)
	}

	_, err = svc.Get(ctx, site.ID)
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeSiteNotFound {
		t.Fatalf("code = %v, want site not found", appErr.Code)
	}
}
