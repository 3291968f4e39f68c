// Package entity 定义领域实体
package entity

import (
	"time"
)

// ContentStatus 内容状态
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// Content 内容条目实体（文章等编辑内容，SEO 引导的目标之一）
type Content struct {
	ID          string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID      string        `json:"site_id" gorm:"type:uuid;index;not null"`
	AuthorID    string        `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Title       string        `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string        `json:"slug" gorm:"type:varchar(255);not null"`
	Excerpt     string        `json:"excerpt,omitempty" gorm:"type:text"`
	Body        string        `json:"body,omitempty" gorm:"type:text"`
	Status      ContentStatus `json:"status" gorm:"type:varchar(50);default:'draft'"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Content) TableName() string {
	return "contents"
}
