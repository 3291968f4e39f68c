// Package wire 提供依赖注入配置
package wire

import (
	"foundry-cms-api/internal/application/blueprint"
	"foundry-cms-api/internal/application/decision"
	"foundry-cms-api/internal/application/plan"
	"foundry-cms-api/internal/application/resolver"
	"foundry-cms-api/internal/application/seo"
	"foundry-cms-api/internal/application/setup"
	"foundry-cms-api/internal/application/site"
	"foundry-cms-api/internal/config"
	"foundry-cms-api/internal/infrastructure/messaging"
	"foundry-cms-api/internal/infrastructure/persistence/postgres"
	"foundry-cms-api/internal/infrastructure/persistence/redis"
	"foundry-cms-api/internal/interfaces/http/handler"
	"foundry-cms-api/internal/interfaces/http/router"
)

// DataLayer 数据层依赖容器
type DataLayer struct {
	// PostgreSQL
	PgClient        *postgres.Client
	TxManager       *postgres.TxManager
	SiteRepo        *postgres.SiteRepository
	AuthorRepo      *postgres.AuthorRepository
	CategoryRepo    *postgres.CategoryRepository
	PageRepo        *postgres.PageRepository
	ContentTypeRepo *postgres.ContentTypeRepository
	ContentRepo     *postgres.ContentRepository
	SeoRepo         *postgres.SeoRepository
	BlueprintRepo   *postgres.BlueprintRepository

	// Redis
	RedisClient *redis.Client
	Cache       *redis.Cache
	Lock        *redis.Lock
	RateLimiter *redis.RateLimiter

	// Messaging
	Producer *messaging.Producer
}

// InitializeDataLayer 初始化数据层
func InitializeDataLayer(cfg *config.Config) (*DataLayer, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		pgClient.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		pgClient.Close()
	}

	maxLen := cfg.Messaging.RedisStream.MaxLen
	if maxLen <= 0 {
		maxLen = 100000
	}

	dl := &DataLayer{
		PgClient:        pgClient,
		TxManager:       postgres.NewTxManager(pgClient),
		SiteRepo:        postgres.NewSiteRepository(pgClient),
		AuthorRepo:      postgres.NewAuthorRepository(pgClient),
		CategoryRepo:    postgres.NewCategoryRepository(pgClient),
		PageRepo:        postgres.NewPageRepository(pgClient),
		ContentTypeRepo: postgres.NewContentTypeRepository(pgClient),
		ContentRepo:     postgres.NewContentRepository(pgClient),
		SeoRepo:         postgres.NewSeoRepository(pgClient),
		BlueprintRepo:   postgres.NewBlueprintRepository(pgClient),
		RedisClient:     redisClient,
		Cache:           redis.NewCache(redisClient),
		Lock:            redis.NewLock(redisClient),
		RateLimiter:     redis.NewRateLimiter(redisClient),
		Producer:        messaging.NewProducer(redisClient.Redis(), int64(maxLen)),
	}
	return dl, cleanup, nil
}

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	dl, cleanup, err := InitializeDataLayer(cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := decision.NewDefaultEngine()
	generator := plan.NewDefaultGenerator()

	siteSvc := site.NewService(dl.SiteRepo, dl.Cache)
	blueprintSvc := blueprint.NewService(dl.SiteRepo, dl.BlueprintRepo, engine, generator, dl.Producer)
	setupSvc := setup.NewService(
		dl.SiteRepo,
		dl.AuthorRepo,
		dl.CategoryRepo,
		dl.PageRepo,
		dl.ContentTypeRepo,
		dl.BlueprintRepo,
		dl.TxManager,
		dl.Lock,
		dl.Producer,
		cfg.Bootstrap.SetupLockTTL,
		redis.BuildSetupLockKey,
	)
	seoPlanner := seo.NewPlanner(dl.SiteRepo, dl.ContentRepo, dl.CategoryRepo, dl.SeoRepo, dl.TxManager)
	siteResolver := resolver.NewResolver(dl.SiteRepo, dl.Cache, cfg.Bootstrap.ResolveCacheTTL)

	handlers := router.Handlers{
		Health:    handler.NewHealthHandler(dl.PgClient, dl.RedisClient),
		Site:      handler.NewSiteHandler(siteSvc),
		Setup:     handler.NewSetupHandler(setupSvc),
		Blueprint: handler.NewBlueprintHandler(blueprintSvc),
		Seo:       handler.NewSeoHandler(seoPlanner),
		Resolve:   handler.NewResolveHandler(siteResolver),
	}

	r := router.New(cfg, handlers, dl.RateLimiter)
	return r, cleanup, nil
}
