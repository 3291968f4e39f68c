package handler

import (
	"github.com/gin-gonic/gin"

	"foundry-cms-api/internal/application/resolver"
	"foundry-cms-api/internal/interfaces/http/dto"
)

// ResolveHandler 域名解析处理器
type ResolveHandler struct {
	resolver *resolver.Resolver
}

// NewResolveHandler 创建解析处理器
func NewResolveHandler(r *resolver.Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: r}
}

// Resolve 根据 Host 解析站点
// @Summary 根据主机名解析站点
// @Tags Resolve
// @Produce json
// @Param host query string true "主机名"
// @Success 200 {object} dto.Response[dto.ResolveResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/resolve [get]
func (h *ResolveHandler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	host := c.Query("host")
	if host == "" {
		// 未显式传参时回退到请求自身的 Host 头
		host = c.Request.Host
	}
	if host == "" {
		dto.BadRequest(c, "host is required")
		return
	}

	res, err := h.resolver.Resolve(ctx, host)
	if err != nil {
		dto.RespondAppError(c, err)
		return
	}
	dto.Success(c, dto.ToResolveResponse(res))
}
