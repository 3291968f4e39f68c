// Package entity 定义领域实体
package entity

import (
	"time"
)

// Author 作者实体（初始化生成的作者均为 AI 人设）
type Author struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID      string    `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_authors_site_role,priority:1;not null"`
	RoleKey     string    `json:"role_key" gorm:"type:varchar(100);uniqueIndex:idx_authors_site_role,priority:2;not null"`
	DisplayName string    `json:"display_name" gorm:"type:varchar(255);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(255);not null"`
	Specialties []string  `json:"specialties,omitempty" gorm:"type:jsonb;serializer:json"`
	Bio         string    `json:"bio,omitempty" gorm:"type:text"`
	IsAI        bool      `json:"is_ai" gorm:"column:is_ai;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Author) TableName() string {
	return "authors"
}

// AuthorPlanItem 作者计划项；RoleKey 是与已持久化作者比对的自然键
type AuthorPlanItem struct {
	RoleKey     string   `json:"role_key"`
	DisplayName string   `json:"display_name"`
	Slug        string   `json:"slug"`
	Specialties []string `json:"specialties"`
	IsAI        bool     `json:"is_ai"`
}
