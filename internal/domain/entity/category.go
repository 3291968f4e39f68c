// Package entity 定义领域实体
package entity

import (
	"time"
)

// Category 分类实体（当前仅支持扁平层级）
type Category struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID     string    `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_categories_site_slug,priority:1;not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Slug       string    `json:"slug" gorm:"type:varchar(255);uniqueIndex:idx_categories_site_slug,priority:2;not null"`
	ParentSlug *string   `json:"parent_slug,omitempty" gorm:"type:varchar(255)"`
	Position   int       `json:"position" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// CategoryPlanItem 分类计划项；Slug 是比对用自然键
type CategoryPlanItem struct {
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	ParentSlug *string `json:"parent_slug"`
	Order      int     `json:"order"`
}
