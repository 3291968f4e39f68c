// Package decision 实现站点结构决策引擎
package decision

import (
	"fmt"

	"foundry-cms-api/internal/domain/entity"
)

// Engine 决策引擎：把定性的站点属性映射为定量的结构画像。
// 纯函数、全函数：未知枚举值回退为中性权重，不存在失败路径。
type Engine struct {
	tables Tables
}

// NewEngine 创建决策引擎
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// NewDefaultEngine 使用生产默认表创建决策引擎
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTables())
}

// ComputeProfile 计算站点决策画像。
// 输入相同则输出逐字节相同，Rationale 亦然——推导轨迹是正式契约的一部分。
func (e *Engine) ComputeProfile(in entity.DecisionInput) entity.DecisionProfile {
	rationale := make([]string, 0, 5)

	// 1. 解析 ambition=auto：自动化为 ai_auto 时取 growth，否则取 starter
	ambition := in.AmbitionLevel
	if ambition == entity.AmbitionAuto {
		if in.AutomationLevel == entity.AutomationAIAuto {
			ambition = entity.AmbitionGrowth
		} else {
			ambition = entity.AmbitionStarter
		}
		rationale = append(rationale, fmt.Sprintf(
			"ambition 'auto' resolved to '%s' (automation '%s')", ambition, in.AutomationLevel))
	}

	// 2. 三张权重表查表，未知键取中性默认值
	siteTypeWeight, ok := e.tables.SiteTypeWeights[in.SiteType]
	if !ok {
		siteTypeWeight = defaultSiteTypeWeight
		rationale = append(rationale, fmt.Sprintf(
			"site type '%s' unknown, default weight %d", in.SiteType, siteTypeWeight))
	} else {
		rationale = append(rationale, fmt.Sprintf(
			"site type '%s' weight %d", in.SiteType, siteTypeWeight))
	}

	automationWeight, ok := e.tables.AutomationWeights[in.AutomationLevel]
	if !ok {
		automationWeight = defaultWeight
		rationale = append(rationale, fmt.Sprintf(
			"automation '%s' unknown, default weight %d", in.AutomationLevel, automationWeight))
	} else {
		rationale = append(rationale, fmt.Sprintf(
			"automation '%s' weight %d", in.AutomationLevel, automationWeight))
	}

	ambitionWeight, ok := e.tables.AmbitionWeights[ambition]
	if !ok {
		ambitionWeight = defaultWeight
		rationale = append(rationale, fmt.Sprintf(
			"ambition '%s' unknown, default weight %d", ambition, ambitionWeight))
	} else {
		rationale = append(rationale, fmt.Sprintf(
			"ambition '%s' weight %d", ambition, ambitionWeight))
	}

	// 3. 合计得分 (1–7)，按固定阈值映射档位
	score := siteTypeWeight + automationWeight + ambitionWeight

	var (
		size       entity.SiteSize
		complexity int
		velocity   entity.Velocity
	)
	switch {
	case score <= 2:
		size, complexity, velocity = entity.SiteSizeSmall, 1, entity.VelocityLow
	case score <= 4:
		size, complexity, velocity = entity.SiteSizeMedium, 2, entity.VelocityMedium
	default:
		size, complexity, velocity = entity.SiteSizeLarge, 3, entity.VelocityHigh
	}
	rationale = append(rationale, fmt.Sprintf(
		"total score %d -> size %s, complexity %d, velocity %s", score, size, complexity, velocity))

	// 4. 按档位取目标表
	targets := e.tables.TargetsBySize[size]
	rationale = append(rationale, fmt.Sprintf("applied %s targets table", size))

	return entity.DecisionProfile{
		SiteSize:   size,
		Complexity: complexity,
		Velocity:   velocity,
		Targets:    targets,
		Rationale:  rationale,
	}
}
