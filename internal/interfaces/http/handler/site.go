// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	sitesvc "foundry-cms-api/internal/application/site"
	"foundry-cms-api/internal/domain/repository"
	"foundry-cms-api/internal/interfaces/http/dto"
	"foundry-cms-api/pkg/logger"
)

// SiteHandler 站点处理器
type SiteHandler struct {
	sites *sitesvc.Service
}

// NewSiteHandler 创建站点处理器
func NewSiteHandler(sites *sitesvc.Service) *SiteHandler {
	return &SiteHandler{sites: sites}
}

// Create 创建站点
// @Summary 创建站点
// @Tags Sites
// @Accept json
// @Produce json
// @Param body body dto.CreateSiteRequest true "站点属性"
// @Success 201 {object} dto.Response[dto.SiteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /v1/sites [post]
func (h *SiteHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	site, err := h.sites.Create(ctx, req.ToInput())
	if err != nil {
		logger.Error(ctx, "failed to create site", err)
		dto.RespondAppError(c, err)
		return
	}
	dto.Created(c, dto.ToSiteResponse(site))
}

// Get 获取站点详情
// @Summary 获取站点
// @Tags Sites
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SiteResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id} [get]
func (h *SiteHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	site, err := h.sites.Get(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSiteResponse(site))
}

// List 获取站点列表
// @Summary 站点列表
// @Tags Sites
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} dto.Response[[]dto.SiteResponse]
// @Router /v1/sites [get]
func (h *SiteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page := dto.BindPage(c)

	result, err := h.sites.List(ctx, repository.NewPagination(page.Page, page.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list sites", err)
		dto.RespondAppError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.ToSiteResponses(result.Items),
		dto.NewPageMeta(result.Page, result.PageSize, int(result.Total)))
}

// Update 更新站点
// @Summary 更新站点
// @Tags Sites
// @Accept json
// @Produce json
// @Param id path string true "站点 ID"
// @Param body body dto.UpdateSiteRequest true "更新内容"
// @Success 200 {object} dto.Response[dto.SiteResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id} [put]
func (h *SiteHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	site, err := h.sites.Update(ctx, c.Param("id"), req.ToInput())
	if err != nil {
		logger.Error(ctx, "failed to update site", err)
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSiteResponse(site))
}

// Delete 删除站点
// @Summary 删除站点
// @Tags Sites
// @Param id path string true "站点 ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id} [delete]
func (h *SiteHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.sites.Delete(ctx, c.Param("id")); err != nil {
		logger.Error(ctx, "failed to delete site", err)
		dto.RespondAppError(c, err)
		return
	}
	dto.NoContent(c)
}
