package plan

import (
	"testing"

	"foundry-cms-api/internal/domain/entity"
)

func TestBuildCategoryPlanMediumGaming(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildCategoryPlan(TaxonomyInput{
		SiteType: entity.SiteTypeGamingPop,
		Profile:  mediumProfile(),
	})

	if len(items) != 8 {
		t.Fatalf("expected 8 categories for a medium site, got %d", len(items))
	}
	if items[0].Name != "Jeux vidéo" || items[1].Name != "Tests & Reviews" {
		t.Fatalf("template order broken: %q, %q", items[0].Name, items[1].Name)
	}
	if items[1].Slug != "tests-et-reviews" {
		t.Fatalf("slug = %q, want tests-et-reviews", items[1].Slug)
	}
	for i, it := range items {
		if it.Order != i {
			t.Fatalf("category %q order = %d, want %d", it.Name, it.Order, i)
		}
		if it.ParentSlug != nil {
			t.Fatalf("category %q has a parent, hierarchy must stay flat", it.Name)
		}
	}
}

func TestBuildCategoryPlanStarterCap(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildCategoryPlan(TaxonomyInput{
		SiteType: entity.SiteTypeNewsMedia,
		Profile:  largeProfile(),
	})

	// 大型站点目标中点为 15，初始化上限压到 10
	if len(items) != 10 {
		t.Fatalf("expected starter cap of 10 categories, got %d", len(items))
	}
}

func TestBuildCategoryPlanKeywordSubstitution(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()

	t.Run("voyage", func(t *testing.T) {
		t.Parallel()
		items := g.BuildCategoryPlan(TaxonomyInput{
			SiteType:    entity.SiteTypeLifestyle,
			Description: "Un blog lifestyle dédié au voyage responsable",
			Profile:     mediumProfile(),
		})
		if last := items[len(items)-1]; last.Name != "Voyage" || last.Slug != "voyage" {
			t.Fatalf("last category = %q (%q), want Voyage", last.Name, last.Slug)
		}
	})

	t.Run("musique_overrides_voyage", func(t *testing.T) {
		t.Parallel()
		// 两个关键词同时出现时后一个检查覆盖前一个的改写
		items := g.BuildCategoryPlan(TaxonomyInput{
			SiteType:    entity.SiteTypeLifestyle,
			Description: "Voyage, musique et découvertes",
			Profile:     mediumProfile(),
		})
		if last := items[len(items)-1]; last.Name != "Musique" {
			t.Fatalf("last category = %q, want Musique", last.Name)
		}
	})

	t.Run("jpop_triggers_musique", func(t *testing.T) {
		t.Parallel()
		items := g.BuildCategoryPlan(TaxonomyInput{
			SiteType:    entity.SiteTypeNichePassion,
			Description: "Actu J-POP et culture japonaise",
			Profile:     mediumProfile(),
		})
		if last := items[len(items)-1]; last.Name != "Musique" {
			t.Fatalf("last category = %q, want Musique", last.Name)
		}
	})

	t.Run("no_keyword_no_substitution", func(t *testing.T) {
		t.Parallel()
		items := g.BuildCategoryPlan(TaxonomyInput{
			SiteType:    entity.SiteTypeGamingPop,
			Description: "Site gaming et esport",
			Profile:     mediumProfile(),
		})
		if last := items[len(items)-1]; last.Name != "Dossiers" {
			t.Fatalf("last category = %q, want the template value Dossiers", last.Name)
		}
	})
}

func TestBuildCategoryPlanUnknownSiteTypeFallsBack(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildCategoryPlan(TaxonomyInput{
		SiteType: entity.SiteType("webzine"),
		Profile:  smallProfile(),
	})

	if len(items) != 4 {
		t.Fatalf("expected 4 categories for a small site, got %d", len(items))
	}
	if items[0].Name != "Anime" {
		t.Fatalf("fallback template should start with Anime, got %q", items[0].Name)
	}
}

func TestFilterMissingCategories(t *testing.T) {
	t.Parallel()

	g := NewDefaultGenerator()
	items := g.BuildCategoryPlan(TaxonomyInput{
		SiteType: entity.SiteTypeGamingPop,
		Profile:  mediumProfile(),
	})

	missing := FilterMissingCategories(items, []string{"jeux-video", "esport"})
	if len(missing) != len(items)-2 {
		t.Fatalf("expected %d missing categories, got %d", len(items)-2, len(missing))
	}
	for _, it := range missing {
		if it.Slug == "jeux-video" || it.Slug == "esport" {
			t.Fatalf("existing slug %q leaked into the diff", it.Slug)
		}
	}
}
