package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"foundry-cms-api/internal/config"
	"foundry-cms-api/internal/domain/entity"
	"foundry-cms-api/internal/infrastructure/persistence/postgres"
)

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting system bootstrap...")

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// 2. 初始化 PostgreSQL
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer pgClient.Close()

	// 3. 迁移表结构
	fmt.Println("Running migrations...")
	if err := pgClient.DB().WithContext(ctx).AutoMigrate(
		&entity.Site{},
		&entity.SiteBlueprint{},
		&entity.Author{},
		&entity.Category{},
		&entity.Page{},
		&entity.ContentType{},
		&entity.Content{},
		&entity.SeoMeta{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed.")

	// 4. 创建演示站点（幂等）
	demoSlug := os.Getenv("BOOTSTRAP_DEMO_SITE_SLUG")
	if demoSlug == "" {
		demoSlug = "demo"
	}

	siteRepo := postgres.NewSiteRepository(pgClient)
	exists, err := siteRepo.ExistsBySlug(ctx, demoSlug)
	if err != nil {
		log.Fatalf("failed to check site existence: %v", err)
	}

	if !exists {
		fmt.Printf("Creating demo site: %s...\n", demoSlug)
		site := entity.NewSite("Demo Site", demoSlug)
		site.Hostnames = []string{demoSlug + ".localhost"}
		site.SiteType = entity.SiteTypeGamingPop
		site.AutomationLevel = entity.AutomationAIAssisted
		site.Description = "Site de démonstration"
		if err := siteRepo.Create(ctx, site); err != nil {
			log.Fatalf("failed to create demo site: %v", err)
		}
		fmt.Printf("Demo site created with ID: %s\n", site.ID)
	} else {
		fmt.Printf("Demo site %s already exists.\n", demoSlug)
	}

	fmt.Println("Bootstrap completed successfully.")
}
