// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"fmt"

	"foundry-cms-api/internal/domain/entity"
)

// Generator 计划生成器：纯函数集合，模板在构造时注入
type Generator struct {
	tpl Templates
}

// NewGenerator 创建计划生成器
func NewGenerator(tpl Templates) *Generator {
	return &Generator{tpl: tpl}
}

// NewDefaultGenerator 使用生产默认模板创建生成器
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultTemplates())
}

// AuthorsInput 作者计划输入
type AuthorsInput struct {
	SiteName string
	Profile  entity.DecisionProfile
}

// BuildAuthorsPlan 生成作者计划。
// 数量 = 作者目标区间中点；首位恒为主编，其后按固定专栏列表补位，
// 不足时以编号通用作者续满；节奏 medium/high 且数量 >= 4 时，
// 末位（从不替换主编）改为时事记者。所有初始化作者均为 AI 人设。
func (g *Generator) BuildAuthorsPlan(in AuthorsInput) []entity.AuthorPlanItem {
	count := in.Profile.Targets.Authors.Midpoint()
	if count < 1 {
		count = 1
	}

	items := make([]entity.AuthorPlanItem, 0, count)

	leadName := fmt.Sprintf("Rédaction %s", in.SiteName)
	items = append(items, entity.AuthorPlanItem{
		RoleKey:     RoleEditorialLead,
		DisplayName: leadName,
		Slug:        AuthorSlug(leadName),
		Specialties: []string{"editorial", "strategie"},
		IsAI:        true,
	})

	generic := 0
	for len(items) < count {
		idx := len(items) - 1
		if idx < len(g.tpl.Specialists) {
			sp := g.tpl.Specialists[idx]
			items = append(items, entity.AuthorPlanItem{
				RoleKey:     sp.RoleKey,
				DisplayName: sp.DisplayName,
				Slug:        AuthorSlug(sp.DisplayName),
				Specialties: append([]string(nil), sp.Specialties...),
				IsAI:        true,
			})
			continue
		}
		generic++
		name := fmt.Sprintf("Rédacteur généraliste %d", generic)
		items = append(items, entity.AuthorPlanItem{
			RoleKey:     fmt.Sprintf("specialist_general_%d", generic),
			DisplayName: name,
			Slug:        AuthorSlug(name),
			Specialties: []string{"generaliste"},
			IsAI:        true,
		})
	}

	// 高产出节奏需要一名时事记者占据末位
	if (in.Profile.Velocity == entity.VelocityMedium || in.Profile.Velocity == entity.VelocityHigh) && count >= 4 {
		items[count-1] = entity.AuthorPlanItem{
			RoleKey:     RoleNewsWriter,
			DisplayName: "Journaliste Actu",
			Slug:        AuthorSlug("Journaliste Actu"),
			Specialties: []string{"actualites", "breves"},
			IsAI:        true,
		}
	}

	return items
}

// FilterMissingAuthors 按 roleKey 做纯集合差，返回尚未持久化的计划项
func FilterMissingAuthors(items []entity.AuthorPlanItem, existingRoleKeys []string) []entity.AuthorPlanItem {
	existing := make(map[string]bool, len(existingRoleKeys))
	for _, k := range existingRoleKeys {
		existing[k] = true
	}

	missing := make([]entity.AuthorPlanItem, 0, len(items))
	for _, it := range items {
		if !existing[it.RoleKey] {
			missing = append(missing, it)
		}
	}
	return missing
}
