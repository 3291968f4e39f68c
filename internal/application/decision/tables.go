// Package decision 实现站点结构决策引擎
package decision

import (
	"foundry-cms-api/internal/domain/entity"
)

// Tables 决策引擎的查表配置。
// 作为构造参数注入而非包级全局量，便于测试替换备用表。
type Tables struct {
	// SiteTypeWeights 站点类型权重 (1–3)；未知类型回退为 1
	SiteTypeWeights map[entity.SiteType]int
	// AutomationWeights 自动化程度权重 (0–2)；未知值回退为 0
	AutomationWeights map[entity.AutomationLevel]int
	// AmbitionWeights 已解析野心等级权重 (0–2)；未知值回退为 0
	AmbitionWeights map[entity.AmbitionLevel]int
	// TargetsBySize 各规模档位的结构化目标
	TargetsBySize map[entity.SiteSize]entity.Targets
}

// 未知枚举值的中性回退权重
const (
	defaultSiteTypeWeight = 1
	defaultWeight         = 0
)

// DefaultTables 返回生产默认表
func DefaultTables() Tables {
	return Tables{
		SiteTypeWeights: map[entity.SiteType]int{
			entity.SiteTypeNichePassion:   1,
			entity.SiteTypeLifestyle:      1,
			entity.SiteTypeAffiliateGuide: 2,
			entity.SiteTypeGamingPop:      2,
			entity.SiteTypeNewsMedia:      3,
		},
		AutomationWeights: map[entity.AutomationLevel]int{
			entity.AutomationManual:     0,
			entity.AutomationAIAssisted: 1,
			entity.AutomationAIAuto:     2,
		},
		AmbitionWeights: map[entity.AmbitionLevel]int{
			entity.AmbitionStarter: 0,
			entity.AmbitionGrowth:  1,
			entity.AmbitionFactory: 2,
		},
		TargetsBySize: map[entity.SiteSize]entity.Targets{
			entity.SiteSizeSmall: {
				Authors:      entity.TargetRange{Min: 1, Max: 2},
				Categories:   entity.TargetRange{Min: 3, Max: 5},
				ContentTypes: entity.TargetRange{Min: 2, Max: 3},
				Pages:        entity.TargetRange{Min: 4, Max: 4},
			},
			entity.SiteSizeMedium: {
				Authors:      entity.TargetRange{Min: 3, Max: 5},
				Categories:   entity.TargetRange{Min: 6, Max: 10},
				ContentTypes: entity.TargetRange{Min: 4, Max: 6},
				Pages:        entity.TargetRange{Min: 5, Max: 5},
			},
			entity.SiteSizeLarge: {
				Authors:      entity.TargetRange{Min: 6, Max: 10},
				Categories:   entity.TargetRange{Min: 10, Max: 20},
				ContentTypes: entity.TargetRange{Min: 6, Max: 8},
				Pages:        entity.TargetRange{Min: 6, Max: 6},
			},
		},
	}
}
