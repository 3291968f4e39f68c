// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"foundry-cms-api/internal/application/seo"
	"foundry-cms-api/internal/application/setup"
)

// SetupPreviewResponse 初始化预览响应：尚未持久化的计划项
type SetupPreviewResponse[T any] struct {
	Kind    string `json:"kind"`
	Missing []T    `json:"missing"`
	Count   int    `json:"count"`
}

// NewSetupPreviewResponse 构造预览响应
func NewSetupPreviewResponse[T any](kind setup.Kind, missing []T) *SetupPreviewResponse[T] {
	return &SetupPreviewResponse[T]{
		Kind:    string(kind),
		Missing: missing,
		Count:   len(missing),
	}
}

// SetupApplyResponse 初始化应用响应
type SetupApplyResponse struct {
	Kind             string `json:"kind"`
	Created          int    `json:"created"`
	Skipped          int    `json:"skipped"`
	BlueprintVersion int    `json:"blueprint_version"`
	DurationMs       int64  `json:"duration_ms"`
}

// ToSetupApplyResponse 服务结果转响应
func ToSetupApplyResponse(r *setup.ApplyResult) *SetupApplyResponse {
	return &SetupApplyResponse{
		Kind:             string(r.Kind),
		Created:          r.Created,
		Skipped:          r.Skipped,
		BlueprintVersion: r.BlueprintVersion,
		DurationMs:       r.DurationMs,
	}
}

// SeoPlanResponse SEO 引导预览响应
type SeoPlanResponse struct {
	Plan *seo.Plan `json:"plan"`
	Size int       `json:"size"`
}

// SeoApplyResponse SEO 引导应用响应
type SeoApplyResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
