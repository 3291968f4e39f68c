package handler

import (
	"github.com/gin-gonic/gin"

	"foundry-cms-api/internal/application/seo"
	"foundry-cms-api/internal/interfaces/http/dto"
	"foundry-cms-api/pkg/logger"
)

// SeoHandler SEO 元数据处理器
type SeoHandler struct {
	planner *seo.Planner
}

// NewSeoHandler 创建 SEO 处理器
func NewSeoHandler(planner *seo.Planner) *SeoHandler {
	return &SeoHandler{planner: planner}
}

// Preview 预览 SEO 补全计划
// @Summary 预览 SEO 元数据补全计划
// @Tags SEO
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SeoPlanResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/seo/bootstrap [get]
func (h *SeoHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	plan, err := h.planner.BuildPlan(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.SeoPlanResponse{Plan: plan, Size: plan.Size()})
}

// Apply 应用 SEO 补全计划
// @Summary 应用 SEO 元数据补全计划
// @Tags SEO
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.SeoApplyResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/seo/bootstrap [post]
func (h *SeoHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.planner.Apply(ctx, c.Param("id"))
	if err != nil {
		logger.Error(ctx, "failed to apply seo plan", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.SeoApplyResponse{Created: result.Created, Skipped: result.Skipped})
}
