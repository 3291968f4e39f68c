package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foundry-cms-api/internal/application/blueprint"
	"foundry-cms-api/internal/interfaces/http/dto"
	"foundry-cms-api/pkg/logger"
)

// BlueprintHandler 蓝图处理器
type BlueprintHandler struct {
	blueprints *blueprint.Service
}

// NewBlueprintHandler 创建蓝图处理器
func NewBlueprintHandler(blueprints *blueprint.Service) *BlueprintHandler {
	return &BlueprintHandler{blueprints: blueprints}
}

// Build 实时构建蓝图（不落库）
// @Summary 根据站点画像实时计算蓝图
// @Tags Blueprint
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.BlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/blueprint/build [get]
func (h *BlueprintHandler) Build(c *gin.Context) {
	ctx := c.Request.Context()

	bp, err := h.blueprints.Build(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToBlueprintResponse(bp))
}

// Save 构建并保存新版本蓝图
// @Summary 保存蓝图为新版本
// @Tags Blueprint
// @Accept json
// @Produce json
// @Param id path string true "站点 ID"
// @Param request body dto.SaveBlueprintRequest false "保存参数"
// @Success 201 {object} dto.Response[dto.SavedBlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/blueprints [post]
func (h *BlueprintHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveBlueprintRequest
	// 请求体可为空，Notes 是可选字段
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.BadRequest(c, "invalid request body")
			return
		}
	}

	bp, err := h.blueprints.Save(ctx, c.Param("id"), req.Notes)
	if err != nil {
		logger.Error(ctx, "failed to save blueprint", err, "site_id", c.Param("id"))
		dto.RespondAppError(c, err)
		return
	}
	dto.Created(c, dto.SavedBlueprintResponse{ID: bp.ID, Version: bp.Version})
}

// GetActive 获取当前激活蓝图
// @Summary 获取站点激活蓝图
// @Tags Blueprint
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[dto.ActiveBlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/blueprints/active [get]
func (h *BlueprintHandler) GetActive(c *gin.Context) {
	ctx := c.Request.Context()

	bp, exists, err := h.blueprints.GetActive(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	resp := dto.ActiveBlueprintResponse{Exists: exists}
	if exists {
		resp.Blueprint = dto.ToBlueprintResponse(bp)
	}
	dto.Success(c, resp)
}

// List 列出站点全部蓝图版本
// @Summary 列出蓝图版本（新版本在前）
// @Tags Blueprint
// @Produce json
// @Param id path string true "站点 ID"
// @Success 200 {object} dto.Response[[]dto.BlueprintSummaryResponse]
// @Router /v1/sites/{id}/blueprints [get]
func (h *BlueprintHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	bps, err := h.blueprints.List(ctx, c.Param("id"))
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToBlueprintSummaries(bps))
}

// GetByVersion 按版本号获取蓝图
// @Summary 按版本号获取蓝图
// @Tags Blueprint
// @Produce json
// @Param id path string true "站点 ID"
// @Param version path int true "版本号"
// @Success 200 {object} dto.Response[dto.BlueprintResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/blueprints/{version} [get]
func (h *BlueprintHandler) GetByVersion(c *gin.Context) {
	ctx := c.Request.Context()

	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		dto.BadRequest(c, "invalid version")
		return
	}

	bp, appErr := h.blueprints.GetByVersion(ctx, c.Param("id"), version)
	if appErr != nil {
		dto.RespondAppError(c, appErr)
		return
	}
	dto.Success(c, dto.ToBlueprintResponse(bp))
}

// Activate 将指定版本设为激活蓝图
// @Summary 激活指定版本蓝图
// @Tags Blueprint
// @Produce json
// @Param id path string true "站点 ID"
// @Param version path int true "版本号"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sites/{id}/blueprints/{version}/activate [put]
func (h *BlueprintHandler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		dto.BadRequest(c, "invalid version")
		return
	}

	if _, err := h.blueprints.Activate(ctx, c.Param("id"), version); err != nil {
		logger.Error(ctx, "failed to activate blueprint", err,
			"site_id", c.Param("id"), "version", version)
		dto.RespondAppError(c, err)
		return
	}
	dto.NoContent(c)
}
