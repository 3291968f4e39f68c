// Package entity 定义领域实体
package entity

import (
	"time"
)

// PageType 必备页面类型（自然键）
type PageType string

const (
	PageTypeAbout            PageType = "about"
	PageTypeContact          PageType = "contact"
	PageTypeLegal            PageType = "legal"
	PageTypePrivacy          PageType = "privacy"
	PageTypeCGU              PageType = "cgu"
	PageTypeEditorialCharter PageType = "editorial_charter"
)

// PageStatus 页面状态
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// Page 静态页面实体
type Page struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID      string     `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_pages_site_type,priority:1;not null"`
	Type        PageType   `json:"type" gorm:"type:varchar(50);uniqueIndex:idx_pages_site_type,priority:2;not null"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(255);not null"`
	ContentHTML string     `json:"content_html" gorm:"column:content_html;type:text"`
	Status      PageStatus `json:"status" gorm:"type:varchar(50);default:'published'"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Page) TableName() string {
	return "pages"
}

// PagePlanItem 必备页面计划项；Type 是比对用自然键
type PagePlanItem struct {
	Type        PageType `json:"type"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	ContentHTML string   `json:"content_html"`
}
