// Package entity 定义领域实体
package entity

import (
	"time"
)

// ContentType 内容类型实体（文章、速报、指南等编辑形态）
type ContentType struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID    string    `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_content_types_site_key,priority:1;not null"`
	Key       string    `json:"key" gorm:"type:varchar(100);uniqueIndex:idx_content_types_site_key,priority:2;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (ContentType) TableName() string {
	return "content_types"
}

// ContentTypePlanItem 内容类型计划项；Key 是比对用自然键
type ContentTypePlanItem struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}
