// Package resolver 实现域名到站点的解析
package resolver

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"foundry-cms-api/internal/domain/entity"
	redisinfra "foundry-cms-api/internal/infrastructure/persistence/redis"
	apperrors "foundry-cms-api/pkg/errors"
	"foundry-cms-api/pkg/metrics"
)

var tracer = otel.Tracer("resolver")

// SiteSource 按域名读取站点
type SiteSource interface {
	GetByHostname(ctx context.Context, hostname string) (*entity.Site, error)
}

// ResolveCache Read-Through 缓存；第二个返回值表示首次读取即命中
type ResolveCache interface {
	GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, bool, error)
}

// Resolution 解析结果（缓存的就是这个结构的 JSON）
type Resolution struct {
	SiteID   string `json:"site_id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Resolver 域名解析器：Read-Through 缓存 + singleflight 合并回源。
// 缓存失效由站点更新/删除路径调用 InvalidateResolve 完成。
type Resolver struct {
	sites SiteSource
	cache ResolveCache
	ttl   time.Duration
}

// NewResolver 创建域名解析器
func NewResolver(sites SiteSource, cache ResolveCache, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Resolver{
		sites: sites,
		cache: cache,
		ttl:   ttl,
	}
}

// Resolve 解析域名对应的站点
func (r *Resolver) Resolve(ctx context.Context, hostname string) (*Resolution, error) {
	ctx, span := tracer.Start(ctx, "resolver.Resolve",
		trace.WithAttributes(attribute.String("resolve.hostname", hostname)))
	defer span.End()

	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" {
		return nil, apperrors.ErrInvalidParam
	}
	// 去掉端口部分，缓存按纯主机名分键
	if i := strings.IndexByte(hostname, ':'); i > 0 {
		hostname = hostname[:i]
	}

	bytes, cached, err := r.cache.GetOrLoadSafe(ctx, redisinfra.BuildResolveKey(hostname), r.ttl, func() (interface{}, error) {
		site, err := r.sites.GetByHostname(ctx, hostname)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to resolve hostname")
		}
		if site == nil {
			return nil, apperrors.ErrSiteNotFound
		}
		return &Resolution{
			SiteID:   site.ID,
			Slug:     site.Slug,
			Name:     site.Name,
			Language: site.Language,
		}, nil
	})
	if err != nil {
		metrics.ResolveCacheHits.WithLabelValues("error").Inc()
		return nil, err
	}

	if cached {
		metrics.ResolveCacheHits.WithLabelValues("hit").Inc()
	} else {
		metrics.ResolveCacheHits.WithLabelValues("miss").Inc()
	}

	var res Resolution
	if err := json.Unmarshal(bytes, &res); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to decode cached resolution")
	}
	return &res, nil
}
