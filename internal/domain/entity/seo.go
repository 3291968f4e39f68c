// Package entity 定义领域实体
package entity

import (
	"time"
)

// SeoTargetKind SEO 元数据目标类型
type SeoTargetKind string

const (
	SeoTargetSite    SeoTargetKind = "site"
	SeoTargetContent SeoTargetKind = "content"
	SeoTargetTerm    SeoTargetKind = "term"
)

// SeoMeta SEO 元数据行，每个目标实体至多一行
type SeoMeta struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID       string        `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_seo_site_target,priority:1;not null"`
	TargetKind   SeoTargetKind `json:"target_kind" gorm:"type:varchar(50);uniqueIndex:idx_seo_site_target,priority:2;not null"`
	TargetID     string        `json:"target_id" gorm:"type:uuid;uniqueIndex:idx_seo_site_target,priority:3;not null"`
	Title        string        `json:"title" gorm:"type:varchar(255)"`
	Description  string        `json:"description,omitempty" gorm:"type:text"`
	RobotsIndex  bool          `json:"robots_index" gorm:"default:true"`
	RobotsFollow bool          `json:"robots_follow" gorm:"default:true"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (SeoMeta) TableName() string {
	return "seo_metas"
}
