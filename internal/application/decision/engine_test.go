package decision

import (
	"reflect"
	"testing"

	"foundry-cms-api/internal/domain/entity"
)

func TestComputeProfileDeterminism(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()
	in := entity.DecisionInput{
		SiteType:        entity.SiteTypeGamingPop,
		AutomationLevel: entity.AutomationAIAssisted,
		AmbitionLevel:   entity.AmbitionGrowth,
		Language:        "fr",
	}

	first := engine.ComputeProfile(in)
	second := engine.ComputeProfile(in)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("profiles differ for identical input:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(first.Rationale, second.Rationale) {
		t.Fatalf("rationale differs for identical input")
	}
}

func TestComputeProfileStarterResolution(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()
	profile := engine.ComputeProfile(entity.DecisionInput{
		SiteType:        entity.SiteTypeNichePassion,
		AutomationLevel: entity.AutomationManual,
		AmbitionLevel:   entity.AmbitionAuto,
	})

	if profile.SiteSize != entity.SiteSizeSmall {
		t.Fatalf("expected small site, got %s", profile.SiteSize)
	}
	if profile.Complexity != 1 || profile.Velocity != entity.VelocityLow {
		t.Fatalf("expected complexity=1 velocity=low, got %d/%s", profile.Complexity, profile.Velocity)
	}
	if got := profile.Targets.Authors; got != (entity.TargetRange{Min: 1, Max: 2}) {
		t.Fatalf("unexpected authors targets: %+v", got)
	}
	if got := profile.Targets.Categories; got != (entity.TargetRange{Min: 3, Max: 5}) {
		t.Fatalf("unexpected categories targets: %+v", got)
	}
	if profile.Rationale[0] != "ambition 'auto' resolved to 'starter' (automation 'manual')" {
		t.Fatalf("unexpected resolution rationale: %q", profile.Rationale[0])
	}
}

func TestComputeProfileGrowthResolution(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()
	profile := engine.ComputeProfile(entity.DecisionInput{
		SiteType:        entity.SiteTypeNichePassion,
		AutomationLevel: entity.AutomationAIAuto,
		AmbitionLevel:   entity.AmbitionAuto,
	})

	// ai_auto 时 auto 解析为 growth：1+2+1=4 -> medium
	if profile.SiteSize != entity.SiteSizeMedium {
		t.Fatalf("expected medium site, got %s", profile.SiteSize)
	}
	if profile.Rationale[0] != "ambition 'auto' resolved to 'growth' (automation 'ai_auto')" {
		t.Fatalf("unexpected resolution rationale: %q", profile.Rationale[0])
	}
}

func TestComputeProfileFactoryLarge(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()
	profile := engine.ComputeProfile(entity.DecisionInput{
		SiteType:        entity.SiteTypeNewsMedia,
		AutomationLevel: entity.AutomationAIAuto,
		AmbitionLevel:   entity.AmbitionFactory,
	})

	if profile.SiteSize != entity.SiteSizeLarge {
		t.Fatalf("expected large site, got %s", profile.SiteSize)
	}
	if profile.Velocity != entity.VelocityHigh {
		t.Fatalf("expected high velocity, got %s", profile.Velocity)
	}
	if got := profile.Targets.ContentTypes; got != (entity.TargetRange{Min: 6, Max: 8}) {
		t.Fatalf("unexpected content type targets: %+v", got)
	}
}

func TestComputeProfileTierThresholds(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()

	cases := []struct {
		name string
		in   entity.DecisionInput
		want entity.SiteSize
	}{
		// niche(1)+manual(0)+starter(0) = 1
		{"score_1", entity.DecisionInput{SiteType: entity.SiteTypeNichePassion, AutomationLevel: entity.AutomationManual, AmbitionLevel: entity.AmbitionStarter}, entity.SiteSizeSmall},
		// lifestyle(1)+ai_assisted(1)+starter(0) = 2
		{"score_2", entity.DecisionInput{SiteType: entity.SiteTypeLifestyle, AutomationLevel: entity.AutomationAIAssisted, AmbitionLevel: entity.AmbitionStarter}, entity.SiteSizeSmall},
		// affiliate(2)+ai_assisted(1)+starter(0) = 3
		{"score_3", entity.DecisionInput{SiteType: entity.SiteTypeAffiliateGuide, AutomationLevel: entity.AutomationAIAssisted, AmbitionLevel: entity.AmbitionStarter}, entity.SiteSizeMedium},
		// gaming(2)+ai_assisted(1)+growth(1) = 4
		{"score_4", entity.DecisionInput{SiteType: entity.SiteTypeGamingPop, AutomationLevel: entity.AutomationAIAssisted, AmbitionLevel: entity.AmbitionGrowth}, entity.SiteSizeMedium},
		// news(3)+ai_assisted(1)+growth(1) = 5
		{"score_5", entity.DecisionInput{SiteType: entity.SiteTypeNewsMedia, AutomationLevel: entity.AutomationAIAssisted, AmbitionLevel: entity.AmbitionGrowth}, entity.SiteSizeLarge},
		// news(3)+ai_auto(2)+factory(2) = 7
		{"score_7", entity.DecisionInput{SiteType: entity.SiteTypeNewsMedia, AutomationLevel: entity.AutomationAIAuto, AmbitionLevel: entity.AmbitionFactory}, entity.SiteSizeLarge},
	}

	for _, tc := range cases {
		profile := engine.ComputeProfile(tc.in)
		if profile.SiteSize != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, profile.SiteSize)
		}
	}
}

func TestComputeProfileUnknownEnumFallback(t *testing.T) {
	t.Parallel()

	engine := NewDefaultEngine()
	profile := engine.ComputeProfile(entity.DecisionInput{
		SiteType:        entity.SiteType("webzine"),
		AutomationLevel: entity.AutomationLevel("cyborg"),
		AmbitionLevel:   entity.AmbitionLevel("imperial"),
	})

	// 未知值不报错：1+0+0=1 -> small
	if profile.SiteSize != entity.SiteSizeSmall {
		t.Fatalf("expected small site for unknown enums, got %s", profile.SiteSize)
	}
	if profile.Rationale[0] != "site type 'webzine' unknown, default weight 1" {
		t.Fatalf("unexpected rationale: %q", profile.Rationale[0])
	}
}

func TestComputeProfileTargetsInvariant(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	for size, targets := range tables.TargetsBySize {
		for name, r := range map[string]entity.TargetRange{
			"authors":       targets.Authors,
			"categories":    targets.Categories,
			"content_types": targets.ContentTypes,
			"pages":         targets.Pages,
		} {
			if r.Min > r.Max {
				t.Fatalf("size %s kind %s: min %d > max %d", size, name, r.Min, r.Max)
			}
		}
	}
}
