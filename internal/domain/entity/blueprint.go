// Package entity 定义领域实体
package entity

import (
	"time"
)

// TaxonomyPlan 蓝图中的分类子文档
type TaxonomyPlan struct {
	Categories []CategoryPlanItem `json:"categories"`
}

// SiteBlueprint 站点蓝图：期望结构状态的不可变版本化快照。
// 版本号在站点内唯一且只分配一次；快照创建后不再修改（仅追加）。
type SiteBlueprint struct {
	ID              string                `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID          string                `json:"site_id" gorm:"type:uuid;uniqueIndex:idx_blueprints_site_version,priority:1;not null"`
	Version         int                   `json:"version" gorm:"uniqueIndex:idx_blueprints_site_version,priority:2;not null"`
	Authors         []AuthorPlanItem      `json:"authors" gorm:"type:jsonb;serializer:json"`
	Taxonomy        TaxonomyPlan          `json:"taxonomy" gorm:"type:jsonb;serializer:json"`
	Pages           []PagePlanItem        `json:"pages" gorm:"type:jsonb;serializer:json"`
	ContentTypes    []ContentTypePlanItem `json:"content_types" gorm:"type:jsonb;serializer:json"`
	DecisionProfile DecisionProfile       `json:"decision_profile" gorm:"type:jsonb;serializer:json"`
	GeneratedAt     time.Time             `json:"generated_at"`
	Notes           string                `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time             `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (SiteBlueprint) TableName() string {
	return "site_blueprints"
}
