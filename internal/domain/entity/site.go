// Package entity 定义领域实体
package entity

import (
	"time"
)

// SiteType 站点编辑类型
type SiteType string

const (
	SiteTypeNichePassion   SiteType = "niche_passion"
	SiteTypeLifestyle      SiteType = "lifestyle"
	SiteTypeAffiliateGuide SiteType = "affiliate_guides"
	SiteTypeGamingPop      SiteType = "gaming_popculture"
	SiteTypeNewsMedia      SiteType = "news_media"
)

// Valid 检查是否为已知站点类型
func (t SiteType) Valid() bool {
	switch t {
	case SiteTypeNichePassion, SiteTypeLifestyle, SiteTypeAffiliateGuide,
		SiteTypeGamingPop, SiteTypeNewsMedia:
		return true
	}
	return false
}

// AutomationLevel 内容自动化程度
type AutomationLevel string

const (
	AutomationManual     AutomationLevel = "manual"
	AutomationAIAssisted AutomationLevel = "ai_assisted"
	AutomationAIAuto     AutomationLevel = "ai_auto"
)

// Valid 检查是否为已知自动化程度
func (a AutomationLevel) Valid() bool {
	switch a {
	case AutomationManual, AutomationAIAssisted, AutomationAIAuto:
		return true
	}
	return false
}

// AmbitionLevel 编辑野心等级
type AmbitionLevel string

const (
	AmbitionAuto    AmbitionLevel = "auto"
	AmbitionStarter AmbitionLevel = "starter"
	AmbitionGrowth  AmbitionLevel = "growth"
	AmbitionFactory AmbitionLevel = "factory"
)

// Valid 检查是否为已知野心等级
func (a AmbitionLevel) Valid() bool {
	switch a {
	case AmbitionAuto, AmbitionStarter, AmbitionGrowth, AmbitionFactory:
		return true
	}
	return false
}

// SiteStatus 站点状态
type SiteStatus string

const (
	SiteStatusActive   SiteStatus = "active"
	SiteStatusArchived SiteStatus = "archived"
)

// Site 站点实体（多租户 CMS 的租户单元）
type Site struct {
	ID              string          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string          `json:"name" gorm:"type:varchar(255);not null"`
	Slug            string          `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Hostnames       []string        `json:"hostnames,omitempty" gorm:"type:jsonb;serializer:json"`
	SiteType        SiteType        `json:"site_type" gorm:"type:varchar(50);default:'niche_passion'"`
	AutomationLevel AutomationLevel `json:"automation_level" gorm:"type:varchar(50);default:'manual'"`
	AmbitionLevel   AmbitionLevel   `json:"ambition_level" gorm:"type:varchar(50);default:'auto'"`
	Language        string          `json:"language" gorm:"type:varchar(10);default:'fr'"`
	Country         string          `json:"country,omitempty" gorm:"type:varchar(10)"`
	Description     string          `json:"description,omitempty" gorm:"type:text"`
	// ActiveBlueprintID 指向当前生效的蓝图版本，为空表示尚未初始化
	ActiveBlueprintID *string    `json:"active_blueprint_id,omitempty" gorm:"type:uuid"`
	Status            SiteStatus `json:"status" gorm:"type:varchar(50);default:'active'"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Site) TableName() string {
	return "sites"
}

// NewSite 创建新站点
func NewSite(name, slug string) *Site {
	now := time.Now()
	return &Site{
		Name:            name,
		Slug:            slug,
		SiteType:        SiteTypeNichePassion,
		AutomationLevel: AutomationManual,
		AmbitionLevel:   AmbitionAuto,
		Language:        "fr",
		Status:          SiteStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsActive 检查站点是否活跃
func (s *Site) IsActive() bool {
	return s.Status == SiteStatusActive
}

// DecisionInput 从站点属性构造决策引擎输入
func (s *Site) DecisionInput() DecisionInput {
	return DecisionInput{
		SiteType:        s.SiteType,
		AutomationLevel: s.AutomationLevel,
		AmbitionLevel:   s.AmbitionLevel,
		Language:        s.Language,
		Country:         s.Country,
		Description:     s.Description,
	}
}
