// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"foundry-cms-api/internal/domain/entity"
)

// SaveBlueprintRequest 保存蓝图请求
type SaveBlueprintRequest struct {
	Notes string `json:"notes,omitempty"`
}

// BlueprintResponse 蓝图响应
type BlueprintResponse struct {
	ID              string                       `json:"id,omitempty"`
	SiteID          string                       `json:"site_id"`
	Version         int                          `json:"version,omitempty"`
	Authors         []entity.AuthorPlanItem      `json:"authors"`
	Taxonomy        entity.TaxonomyPlan          `json:"taxonomy"`
	Pages           []entity.PagePlanItem        `json:"pages"`
	ContentTypes    []entity.ContentTypePlanItem `json:"content_types"`
	DecisionProfile entity.DecisionProfile       `json:"decision_profile"`
	GeneratedAt     time.Time                    `json:"generated_at"`
	Notes           string                       `json:"notes,omitempty"`
}

// ToBlueprintResponse 实体转响应
func ToBlueprintResponse(bp *entity.SiteBlueprint) *BlueprintResponse {
	return &BlueprintResponse{
		ID:              bp.ID,
		SiteID:          bp.SiteID,
		Version:         bp.Version,
		Authors:         bp.Authors,
		Taxonomy:        bp.Taxonomy,
		Pages:           bp.Pages,
		ContentTypes:    bp.ContentTypes,
		DecisionProfile: bp.DecisionProfile,
		GeneratedAt:     bp.GeneratedAt,
		Notes:           bp.Notes,
	}
}

// BlueprintSummaryResponse 蓝图列表项（省略计划明细）
type BlueprintSummaryResponse struct {
	ID          string    `json:"id"`
	Version     int       `json:"version"`
	SiteSize    string    `json:"site_size"`
	GeneratedAt time.Time `json:"generated_at"`
	Notes       string    `json:"notes,omitempty"`
}

// ToBlueprintSummaries 实体列表转摘要列表
func ToBlueprintSummaries(bps []*entity.SiteBlueprint) []*BlueprintSummaryResponse {
	out := make([]*BlueprintSummaryResponse, len(bps))
	for i, bp := range bps {
		out[i] = &BlueprintSummaryResponse{
			ID:          bp.ID,
			Version:     bp.Version,
			SiteSize:    string(bp.DecisionProfile.SiteSize),
			GeneratedAt: bp.GeneratedAt,
			Notes:       bp.Notes,
		}
	}
	return out
}

// ActiveBlueprintResponse 生效蓝图响应；exists 为 false 表示站点尚未激活任何版本
type ActiveBlueprintResponse struct {
	Exists    bool               `json:"exists"`
	Blueprint *BlueprintResponse `json:"blueprint,omitempty"`
}

// SavedBlueprintResponse 保存结果
type SavedBlueprintResponse struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}
