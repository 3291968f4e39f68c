// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"foundry-cms-api/internal/application/resolver"
)

// ResolveResponse 域名解析响应
type ResolveResponse struct {
	SiteID   string `json:"site_id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// ToResolveResponse 解析结果转响应
func ToResolveResponse(r *resolver.Resolution) *ResolveResponse {
	return &ResolveResponse{
		SiteID:   r.SiteID,
		Slug:     r.Slug,
		Name:     r.Name,
		Language: r.Language,
	}
}
