// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"foundry-cms-api/internal/domain/entity"
)

// BuildContentTypePlan 按决策目标区间的中点从固定顺序模板截取内容类型
func (g *Generator) BuildContentTypePlan(profile entity.DecisionProfile) []entity.ContentTypePlanItem {
	count := profile.Targets.ContentTypes.Midpoint()
	if count < 1 {
		count = 1
	}
	if count > len(g.tpl.ContentTypes) {
		count = len(g.tpl.ContentTypes)
	}

	items := make([]entity.ContentTypePlanItem, count)
	for i, ct := range g.tpl.ContentTypes[:count] {
		items[i] = entity.ContentTypePlanItem{
			Key:   ct.Key,
			Name:  ct.Name,
			Order: i,
		}
	}
	return items
}

// FilterMissingContentTypes 按 key 做纯集合差
func FilterMissingContentTypes(items []entity.ContentTypePlanItem, existingKeys []string) []entity.ContentTypePlanItem {
	existing := make(map[string]bool, len(existingKeys))
	for _, k := range existingKeys {
		existing[k] = true
	}

	missing := make([]entity.ContentTypePlanItem, 0, len(items))
	for _, it := range items {
		if !existing[it.Key] {
			missing = append(missing, it)
		}
	}
	return missing
}
