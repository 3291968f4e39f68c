// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"foundry-cms-api/internal/application/setup"
	"foundry-cms-api/internal/interfaces/http/dto"
	"foundry-cms-api/pkg/logger"
)

// SetupHandler 站点初始化处理器。每个实体种类一对 preview/apply 路由；
// preview 只读，apply 插入缺失集合。
type SetupHandler struct {
	setup *setup.Service
}

// NewSetupHandler 创建初始化处理器
func NewSetupHandler(setupSvc *setup.Service) *SetupHandler {
	return &SetupHandler{setup: setupSvc}
}

// PreviewAuthors 预览作者计划
// @Summary 预览作者初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupPreviewResponse[entity.AuthorPlanItem]]
// @Failure 412 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/setup/authors [get]
func (h *SetupHandler) PreviewAuthors(c *gin.Context) {
	ctx := c.Request.Context()

	missing, err := h.setup.PreviewAuthors(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.NewSetupPreviewResponse(setup.KindAuthors, missing))
}

// ApplyAuthors 应用作者计划
// @Summary 应用作者初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupApplyResponse]
// @Failure 409 {object} dto.ErrorResponse
// @Failure 412 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/setup/authors [post]
func (h *SetupHandler) ApplyAuthors(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.setup.ApplyAuthors(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to apply authors plan", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSetupApplyResponse(result))
}

// PreviewTaxonomy 预览分类计划
// @Summary 预览分类初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupPreviewResponse[entity.CategoryPlanItem]]
// @Router /v1/sites/{id}/setup/taxonomy [get]
func (h *SetupHandler) PreviewTaxonomy(c *gin.Context) {
	ctx := c.Request.Context()

	missing, err := h.setup.PreviewTaxonomy(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.NewSetupPreviewResponse(setup.KindTaxonomy, missing))
}

// ApplyTaxonomy 应用分类计划
// @Summary 应用分类初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupApplyResponse]
// @Router /v1/sites/{id}/setup/taxonomy [post]
func (h *SetupHandler) ApplyTaxonomy(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.setup.ApplyTaxonomy(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to apply taxonomy plan", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSetupApplyResponse(result))
}

// PreviewPages 预览页面计划
// @Summary 预览必备页面初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupPreviewResponse[entity.PagePlanItem]]
// @Router /v1/sites/{id}/setup/pages [get]
func (h *SetupHandler) PreviewPages(c *gin.Context) {
	ctx := c.Request.Context()

	missing, err := h.setup.PreviewPages(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.NewSetupPreviewResponse(setup.KindPages, missing))
}

// ApplyPages 应用页面计划
// @Summary 应用必备页面初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupApplyResponse]
// @Router /v1/sites/{id}/setup/pages [post]
func (h *SetupHandler) ApplyPages(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.setup.ApplyPages(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to apply pages plan", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSetupApplyResponse(result))
}

// PreviewContentTypes 预览内容类型计划
// @Summary 预览内容类型初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupPreviewResponse[entity.ContentTypePlanItem]]
// @Router /v1/sites/{id}/setup/content-types [get]
func (h *SetupHandler) PreviewContentTypes(c *gin.Context) {
	ctx := c.Request.Context()

	missing, err := h.setup.PreviewContentTypes(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.NewSetupPreviewResponse(setup.KindContentTypes, missing))
}

// ApplyContentTypes 应用内容类型计划
// @Summary 应用内容类型初始化计划
// @Tags Setup
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SetupApplyResponse]
// @Router /v1/sites/{id}/setup/content-types [post]
func (h *SetupHandler) ApplyContentTypes(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.setup.ApplyContentTypes(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to apply content types plan", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToSetupApplyResponse(result))
}
