// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"strings"

	"foundry-cms-api/internal/domain/entity"
)

// PagesInput 必备页面计划输入
type PagesInput struct {
	SiteName string
	SiteSize entity.SiteSize
	Language string
	Country  string
}

// BuildMandatoryPagesPlan 生成必备页面计划。
// 按语言选择固定顺序模板（fr/en，其他语言码回退 en），
// 按规模截断到 {small:4, medium:5, large:6}，
// 所有页面附带同一段语言对应的占位正文——逐页定制属于后续丰富步骤。
func (g *Generator) BuildMandatoryPagesPlan(in PagesInput) []entity.PagePlanItem {
	lang := normalizeLanguage(in.Language)
	template, ok := g.tpl.PageTemplates[lang]
	if !ok {
		lang = "en"
		template = g.tpl.PageTemplates[lang]
	}

	count, ok := g.tpl.PageCountBySize[in.SiteSize]
	if !ok || count > len(template) {
		count = len(template)
	}

	body := strings.ReplaceAll(g.tpl.PageBoilerplate[lang], "{{siteName}}", in.SiteName)

	items := make([]entity.PagePlanItem, count)
	for i, p := range template[:count] {
		items[i] = entity.PagePlanItem{
			Type:        p.Type,
			Title:       p.Title,
			Slug:        p.Slug,
			ContentHTML: body,
		}
	}
	return items
}

// normalizeLanguage 取语言码主标签并小写（"fr-FR" -> "fr"）
func normalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

// FilterMissingPages 按页面类型做纯集合差
func FilterMissingPages(items []entity.PagePlanItem, existingTypes []entity.PageType) []entity.PagePlanItem {
	existing := make(map[entity.PageType]bool, len(existingTypes))
	for _, t := range existingTypes {
		existing[t] = true
	}

	missing := make([]entity.PagePlanItem, 0, len(items))
	for _, it := range items {
		if !existing[it.Type] {
			missing = append(missing, it)
		}
	}
	return missing
}
