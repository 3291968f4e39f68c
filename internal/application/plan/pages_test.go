package plan

import (
	"strings"
	"testing"

	"foundry-cms-api/internal/domain/entity"
)

func TestBuildMandatoryPagesPlanFrench(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildMandatoryPagesPlan(PagesInput{
		SiteName: "Otaku Hebdo",
		SiteSize: entity.SiteSizeMedium,
		Language: "fr",
	})

	if len(items) != 5 {
		t.Fatalf("expected 5 pages for a medium site, got %d", len(items))
	}
	if items[0].Type != entity.PageTypeAbout || items[0].Slug != "a-propos" {
		t.Fatalf("first page = %s (%s), want about page", items[0].Type, items[0].Slug)
	}
	last := items[len(items)-1]
	if last.Type != entity.PageTypeCGU {
		t.Fatalf("fifth page type = %s, want %s", last.Type, entity.PageTypeCGU)
	}
	if last.Title != "Conditions générales d'utilisation" || last.Slug != "conditions-generales" {
		t.Fatalf("CGU page = %q (%q)", last.Title, last.Slug)
	}
	for _, it := range items {
		if !strings.Contains(it.ContentHTML, "Otaku Hebdo") {
			t.Fatalf("page %s boilerplate missing the site name", it.Type)
		}
		if strings.Contains(it.ContentHTML, "{{siteName}}") {
			t.Fatalf("page %s boilerplate placeholder not replaced", it.Type)
		}
	}
}

func TestBuildMandatoryPagesPlanSizes(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	cases := []struct {
		size entity.SiteSize
		want int
	}{
		{entity.SiteSizeSmall, 4},
		{entity.SiteSizeMedium, 5},
		{entity.SiteSizeLarge, 6},
	}
	for _, tc := range cases {
		items := g.BuildMandatoryPagesPlan(PagesInput{SiteName: "X", SiteSize: tc.size, Language: "fr"})
		if len(items) != tc.want {
			t.Fatalf("size %s: expected %d pages, got %d", tc.size, tc.want, len(items))
		}
	}
	// 大型站点保留完整模板，末位是编辑章程
	full := g.BuildMandatoryPagesPlan(PagesInput{SiteName: "X", SiteSize: entity.SiteSizeLarge, Language: "fr"})
	if full[5].Type != entity.PageTypeEditorialCharter {
		t.Fatalf("sixth page type = %s, want %s", full[5].Type, entity.PageTypeEditorialCharter)
	}
}

func TestBuildMandatoryPagesPlanLanguageFallback(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()

	t.Run("regional_tag", func(t *testing.T) {
		t.Parallel()
		items := g.BuildMandatoryPagesPlan(PagesInput{SiteName: "X", SiteSize: entity.SiteSizeSmall, Language: "fr-FR"})
		if items[0].Title != "À propos" {
			t.Fatalf("fr-FR should use the French template, got %q", items[0].Title)
		}
	})

	t.Run("unknown_language", func(t *testing.T) {
		t.Parallel()
		items := g.BuildMandatoryPagesPlan(PagesInput{SiteName: "X", SiteSize: entity.SiteSizeSmall, Language: "de"})
		if items[0].Title != "About Us" {
			t.Fatalf("unknown language should fall back to English, got %q", items[0].Title)
		}
	})
}

func TestFilterMissingPages(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildMandatoryPagesPlan(PagesInput{SiteName: "X", SiteSize: entity.SiteSizeMedium, Language: "fr"})

	missing := FilterMissingPages(items, []entity.PageType{entity.PageTypeAbout, entity.PageTypeContact})
	if len(missing) != 3 {
		t.Fatalf("expected 3 missing pages, got %d", len(missing))
	}
	for _, it := range missing {
		if it.Type == entity.PageTypeAbout || it.Type == entity.PageTypeContact {
			t.Fatalf("existing page type %s leaked into the diff", it.Type)
		}
	}
}
