// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"foundry-cms-api/internal/application/site"
	"foundry-cms-api/internal/domain/entity"
)

// CreateSiteRequest 创建站点请求
type CreateSiteRequest struct {
	Name            string   `json:"name" binding:"required"`
	Slug            string   `json:"slug" binding:"required"`
	Hostnames       []string `json:"hostnames,omitempty"`
	SiteType        string   `json:"site_type,omitempty"`
	AutomationLevel string   `json:"automation_level,omitempty"`
	AmbitionLevel   string   `json:"ambition_level,omitempty"`
	Language        string   `json:"language,omitempty"`
	Country         string   `json:"country,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// ToInput 转换为服务输入
func (r *CreateSiteRequest) ToInput() site.CreateInput {
	return site.CreateInput{
		Name:            r.Name,
		Slug:            r.Slug,
		Hostnames:       r.Hostnames,
		SiteType:        r.SiteType,
		AutomationLevel: r.AutomationLevel,
		AmbitionLevel:   r.AmbitionLevel,
		Language:        r.Language,
		Country:         r.Country,
		Description:     r.Description,
	}
}

// UpdateSiteRequest 更新站点请求；省略字段保持不变
type UpdateSiteRequest struct {
	Name            *string   `json:"name,omitempty"`
	Hostnames       *[]string `json:"hostnames,omitempty"`
	SiteType        *string   `json:"site_type,omitempty"`
	AutomationLevel *string   `json:"automation_level,omitempty"`
	AmbitionLevel   *string   `json:"ambition_level,omitempty"`
	Language        *string   `json:"language,omitempty"`
	Country         *string   `json:"country,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Status          *string   `json:"status,omitempty"`
}

// ToInput 转换为服务输入
func (r *UpdateSiteRequest) ToInput() site.UpdateInput {
	return site.UpdateInput{
		Name:            r.Name,
		Hostnames:       r.Hostnames,
		SiteType:        r.SiteType,
		AutomationLevel: r.AutomationLevel,
		AmbitionLevel:   r.AmbitionLevel,
		Language:        r.Language,
		Country:         r.Country,
		Description:     r.Description,
		Status:          r.Status,
	}
}

// SiteResponse 站点响应
type SiteResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Hostnames         []string  `json:"hostnames,omitempty"`
	SiteType          string    `json:"site_type"`
	AutomationLevel   string    `json:"automation_level"`
	AmbitionLevel     string    `json:"ambition_level"`
	Language          string    `json:"language"`
	Country           string    `json:"country,omitempty"`
	Description       string    `json:"description,omitempty"`
	ActiveBlueprintID *string   `json:"active_blueprint_id,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToSiteResponse 实体转响应
func ToSiteResponse(s *entity.Site) *SiteResponse {
	return &SiteResponse{
		ID:                s.ID,
		Name:              s.Name,
		Slug:              s.Slug,
		Hostnames:         s.Hostnames,
		SiteType:          string(s.SiteType),
		AutomationLevel:   string(s.AutomationLevel),
		AmbitionLevel:     string(s.AmbitionLevel),
		Language:          s.Language,
		Country:           s.Country,
		Description:       s.Description,
		ActiveBlueprintID: s.ActiveBlueprintID,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToSiteResponses 实体列表转响应列表
func ToSiteResponses(sites []*entity.Site) []*SiteResponse {
	out := make([]*SiteResponse, len(sites))
	for i, s := range sites {
		out[i] = ToSiteResponse(s)
	}
	return out
}
