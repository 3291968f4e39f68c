// Package router 提供 HTTP 路由配置
package router

import (
	"foundry-cms-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	siteHandler *handler.SiteHandler,
	setupHandler *handler.SetupHandler,
	blueprintHandler *handler.BlueprintHandler,
	seoHandler *handler.SeoHandler,
	resolveHandler *handler.ResolveHandler,
) {
	// 站点管理
	sites := v1.Group("/sites")
	{
		sites.GET("", siteHandler.List)
		sites.POST("", siteHandler.Create)
		sites.GET("/:id", siteHandler.Get)
		sites.PUT("/:id", siteHandler.Update)
		sites.DELETE("/:id", siteHandler.Delete)

		// 蓝图管理
		sites.GET("/:id/blueprint/build", blueprintHandler.Build)
		sites.GET("/:id/blueprints", blueprintHandler.List)
		sites.POST("/:id/blueprints", blueprintHandler.Save)
		sites.GET("/:id/blueprints/active", blueprintHandler.GetActive)
		sites.GET("/:id/blueprints/:version", blueprintHandler.GetByVersion)
		sites.PUT("/:id/blueprints/:version/activate", blueprintHandler.Activate)

		// 站点初始化：每类实体一对 preview/apply
		setup := sites.Group("/:id/setup")
		{
			setup.GET("/authors", setupHandler.PreviewAuthors)
			setup.POST("/authors", setupHandler.ApplyAuthors)
			setup.GET("/taxonomy", setupHandler.PreviewTaxonomy)
			setup.POST("/taxonomy", setupHandler.ApplyTaxonomy)
			setup.GET("/pages", setupHandler.PreviewPages)
			setup.POST("/pages", setupHandler.ApplyPages)
			setup.GET("/content-types", setupHandler.PreviewContentTypes)
			setup.POST("/content-types", setupHandler.ApplyContentTypes)
		}

		// SEO 元数据补全
		sites.GET("/:id/seo/bootstrap", seoHandler.Preview)
		sites.POST("/:id/seo/bootstrap", seoHandler.Apply)
	}

	// 域名解析
	v1.GET("/resolve", resolveHandler.Resolve)
}
