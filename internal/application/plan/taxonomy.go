// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"strings"

	"foundry-cms-api/internal/domain/entity"
)

// TaxonomyInput 分类计划输入
type TaxonomyInput struct {
	SiteType    entity.SiteType
	Description string
	Profile     entity.DecisionProfile
}

// BuildCategoryPlan 生成分类计划。
// 数量 = min(分类目标区间中点, 初始化上限)；从站点类型对应模板顺序取前 N 项，
// 再按固定顺序执行关键词替换：描述含 "voyage" 则末位改为 "Voyage"，
// 随后描述含 "musique"/"j-pop" 则末位改为 "Musique"。
// 两个检查依次作用于可能已被改写的列表，第二个可以覆盖第一个的结果；
// 该顺序是既有契约，必须原样保留。
func (g *Generator) BuildCategoryPlan(in TaxonomyInput) []entity.CategoryPlanItem {
	template, ok := g.tpl.CategoryTemplates[in.SiteType]
	if !ok {
		template = g.tpl.CategoryTemplates[entity.SiteTypeNichePassion]
	}

	count := in.Profile.Targets.Categories.Midpoint()
	if limit, ok := g.tpl.CategoryStarterCap[in.Profile.SiteSize]; ok && count > limit {
		count = limit
	}
	if count > len(template) {
		count = len(template)
	}
	if count < 1 {
		count = 1
	}

	names := make([]string, count)
	copy(names, template[:count])

	desc := strings.ToLower(in.Description)
	if strings.Contains(desc, "voyage") && !containsKeyword(names, "voyage") {
		names[count-1] = "Voyage"
	}
	if (strings.Contains(desc, "musique") || strings.Contains(desc, "j-pop")) && !containsKeyword(names, "musique") {
		names[count-1] = "Musique"
	}

	items := make([]entity.CategoryPlanItem, count)
	for i, name := range names {
		items[i] = entity.CategoryPlanItem{
			Name:       name,
			Slug:       SlugifyCategory(name),
			ParentSlug: nil, // 仅扁平层级
			Order:      i,
		}
	}
	return items
}

// containsKeyword 检查任一分类名（小写比较）是否包含关键词
func containsKeyword(names []string, keyword string) bool {
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), keyword) {
			return true
		}
	}
	return false
}

// FilterMissingCategories 按 slug 做纯集合差
func FilterMissingCategories(items []entity.CategoryPlanItem, existingSlugs []string) []entity.CategoryPlanItem {
	existing := make(map[string]bool, len(existingSlugs))
	for _, s := range existingSlugs {
		existing[s] = true
	}

	missing := make([]entity.CategoryPlanItem, 0, len(items))
	for _, it := range items {
		if !existing[it.Slug] {
			missing = append(missing, it)
		}
	}
	return missing
}
