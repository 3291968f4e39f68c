package resolver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"foundry-cms-api/internal/domain/entity"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/metrics"
)

type fakeSiteSource struct {
	site  *entity.Site
	calls int
}

func (f *fakeSiteSource) GetByHostname(_ context.Context, hostname string) (*entity.Site, error) {
	f.calls++
	if f.site != nil {
		for _, h := range f.site.Hostnames {
			if h == hostname {
				return f.site, nil
			}
		}
	}
	return nil, nil
}

// fakeCache 记录键并按配置返回；cached=false 且不调 loader 时
// 模拟搭上他人回源航班的调用
type fakeCache struct {
	lastKey    string
	value      []byte
	cached     bool
	skipLoader bool
}

func (f *fakeCache) GetOrLoadSafe(_ context.Context, key string, _ time.Duration, loader func() (interface{}, error)) ([]byte, bool, error) {
	f.lastKey = key
	if f.cached || f.skipLoader {
		return f.value, f.cached, nil
	}
	data, err := loader()
	if err != nil {
		return nil, false, err
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, false, err
	}
	return bytes, false, nil
}

func cachedResolution(t *testing.T) []byte {
	t.Helper()
	bytes, err := json.Marshal(&Resolution{
		SiteID:   "site-1",
		Slug:     "demo",
		Name:     "Demo",
		Language: "fr",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes
}

func TestResolveCacheHit(t *testing.T) {
	cache := &fakeCache{value: cachedResolution(t), cached: true}
	r := NewResolver(&fakeSiteSource{}, cache, time.Minute)

	before := testutil.ToFloat64(metrics.ResolveCacheHits.WithLabelValues("hit"))
	res, err := r.Resolve(context.Background(), " Demo.Example.COM:8080 ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SiteID != "site-1" || res.Language != "fr" {
		t.Fatalf("resolution = %+v", res)
	}
	// 端口剥离、小写化后才构建缓存键
	if cache.lastKey != "resolve:host:demo.example.com" {
		t.Fatalf("cache key = %q", cache.lastKey)
	}
	after := testutil.ToFloat64(metrics.ResolveCacheHits.WithLabelValues("hit"))
	if after-before != 1 {
		t.Fatalf("hit counter delta = %v, want 1", after-before)
	}
}

func TestResolveSharedFlightCountsMiss(t *testing.T) {
	// 首次读取未命中、值由并发的另一次回源填充：算 miss 而非 hit
	cache := &fakeCache{value: cachedResolution(t), cached: false, skipLoader: true}
	r := NewResolver(&fakeSiteSource{}, cache, time.Minute)

	before := testutil.ToFloat64(metrics.ResolveCacheHits.WithLabelValues("miss"))
	res, err := r.Resolve(context.Background(), "demo.example.com")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SiteID != "site-1" {
		t.Fatalf("resolution = %+v", res)
	}
	after := testutil.ToFloat64(metrics.ResolveCacheHits.WithLabelValues("miss"))
	if after-before != 1 {
		t.Fatalf("miss counter delta = %v, want 1", after-before)
	}
}

func TestResolveLoadsFromSource(t *testing.T) {
	src := &fakeSiteSource{site: &entity.Site{
		ID:        "site-7",
		Slug:      "otaku",
		Name:      "Otaku Hebdo",
		Language:  "fr",
		Hostnames: []string{"otaku-hebdo.fr"},
	}}
	r := NewResolver(src, &fakeCache{}, time.Minute)

	res, err := r.Resolve(context.Background(), "otaku-hebdo.fr")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SiteID != "site-7" || res.Slug != "otaku" {
		t.Fatalf("resolution = %+v", res)
	}
	if src.calls != 1 {
		t.Fatalf("source calls = %d, want 1", src.calls)
	}
}

func TestResolveUnknownHost(t *testing.T) {
	r := NewResolver(&fakeSiteSource{}, &fakeCache{}, time.Minute)

	_, err := r.Resolve(context.Background(), "nobody.example.com")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeSiteNotFound {
		t.Fatalf("code = %v, want site not found", appErr.Code)
	}
}

func TestResolveEmptyHostname(t *testing.T) {
	r := NewResolver(&fakeSiteSource{}, &fakeCache{}, time.Minute)

	_, err := r.Resolve(context.Background(), "   ")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidParam {
		t.Fatalf("code = %v, want invalid param", appErr.Code)
	}
}
