// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"foundry-cms-api/internal/domain/entity"
)

// 稳定角色键
const (
	RoleEditorialLead = "editorial_lead"
	RoleNewsWriter    = "news_writer"
)

// specialistTemplate 专栏作者模板
type specialistTemplate struct {
	RoleKey     string
	DisplayName string
	Specialties []string
}

// pageTemplate 必备页面模板（slug 为固定值，不由标题推导）
type pageTemplate struct {
	Type  entity.PageType
	Title string
	Slug  string
}

// contentTypeTemplate 内容类型模板
type contentTypeTemplate struct {
	Key  string
	Name string
}

// Templates 生成器的模板配置。
// 与决策表同理：注入而非全局，测试可替换。
type Templates struct {
	// Specialists 专栏作者的固定顺序列表，数量不足时以编号通用作者补齐
	Specialists []specialistTemplate
	// CategoryTemplates 每种站点类型一份有序分类模板；未知类型回退 niche_passion
	CategoryTemplates map[entity.SiteType][]string
	// CategoryStarterCap 初始化阶段的分类数量上限，独立于决策目标中点
	CategoryStarterCap map[entity.SiteSize]int
	// PageCountBySize 各规模档位保留的页面数量
	PageCountBySize map[entity.SiteSize]int
	// PageTemplates 语言键（fr/en）到页面模板的映射
	PageTemplates map[string][]pageTemplate
	// PageBoilerplate 语言键到占位正文的映射，{{siteName}} 会被替换
	PageBoilerplate map[string]string
	// ContentTypes 内容类型的固定顺序模板
	ContentTypes []contentTypeTemplate
}

// DefaultTemplates 返回生产默认模板
func DefaultTemplates() Templates {
	return Templates{
		Specialists: []specialistTemplate{
			{RoleKey: "specialist_anime_manga", DisplayName: "Spécialiste Anime & Manga", Specialties: []string{"anime", "manga"}},
			{RoleKey: "specialist_gaming", DisplayName: "Spécialiste Jeux vidéo", Specialties: []string{"jeux-video", "esport"}},
			{RoleKey: "specialist_culture", DisplayName: "Spécialiste Pop Culture", Specialties: []string{"pop-culture", "cinema"}},
		},
		CategoryTemplates: map[entity.SiteType][]string{
			entity.SiteTypeNichePassion: {
				"Anime", "Manga", "Critiques & Tests", "Guides", "Actualités",
				"Dossiers", "Interviews", "Classements", "Culture japonaise", "Communauté",
			},
			entity.SiteTypeLifestyle: {
				"Bien-être", "Mode", "Beauté", "Maison & Déco", "Cuisine",
				"Santé", "Famille", "Loisirs", "Budget", "Inspirations",
			},
			entity.SiteTypeAffiliateGuide: {
				"Guides d'achat", "Comparatifs", "Tests produits", "Bons plans", "High-tech",
				"Maison", "Sport & Plein air", "Auto & Moto", "Jardin", "Électroménager",
			},
			entity.SiteTypeGamingPop: {
				"Jeux vidéo", "Tests & Reviews", "Esport", "Pop culture", "Cinéma & Séries",
				"Guides & Astuces", "Actualités", "Dossiers", "Rétrogaming", "Tech",
			},
			entity.SiteTypeNewsMedia: {
				"Actualités", "Politique", "Économie", "Société", "International",
				"Sport", "Culture", "Sciences & Tech", "Santé", "Environnement",
			},
		},
		CategoryStarterCap: map[entity.SiteSize]int{
			entity.SiteSizeSmall:  4,
			entity.SiteSizeMedium: 8,
			entity.SiteSizeLarge:  10,
		},
		PageCountBySize: map[entity.SiteSize]int{
			entity.SiteSizeSmall:  4,
			entity.SiteSizeMedium: 5,
			entity.SiteSizeLarge:  6,
		},
		PageTemplates: map[string][]pageTemplate{
			"fr": {
				{Type: entity.PageTypeAbout, Title: "À propos", Slug: "a-propos"},
				{Type: entity.PageTypeContact, Title: "Contact", Slug: "contact"},
				{Type: entity.PageTypeLegal, Title: "Mentions légales", Slug: "mentions-legales"},
				{Type: entity.PageTypePrivacy, Title: "Politique de confidentialité", Slug: "politique-de-confidentialite"},
				{Type: entity.PageTypeCGU, Title: "Conditions générales d'utilisation", Slug: "conditions-generales"},
				{Type: entity.PageTypeEditorialCharter, Title: "Charte éditoriale", Slug: "charte-editoriale"},
			},
			"en": {
				{Type: entity.PageTypeAbout, Title: "About Us", Slug: "about"},
				{Type: entity.PageTypeContact, Title: "Contact", Slug: "contact"},
				{Type: entity.PageTypeLegal, Title: "Legal Notice", Slug: "legal-notice"},
				{Type: entity.PageTypePrivacy, Title: "Privacy Policy", Slug: "privacy-policy"},
				{Type: entity.PageTypeCGU, Title: "Terms of Use", Slug: "terms-of-use"},
				{Type: entity.PageTypeEditorialCharter, Title: "Editorial Guidelines", Slug: "editorial-guidelines"},
			},
		},
		PageBoilerplate: map[string]string{
			"fr": "<p>Bienvenue sur {{siteName}}. Cette page sera prochainement enrichie par notre équipe éditoriale.</p>" +
				"<p>Pour toute question, n'hésitez pas à nous écrire via la page Contact.</p>",
			"en": "<p>Welcome to {{siteName}}. This page will soon be completed by our editorial team.</p>" +
				"<p>If you have any questions, feel free to reach out through our Contact page.</p>",
		},
		ContentTypes: []contentTypeTemplate{
			{Key: "article", Name: "Article"},
			{Key: "news", Name: "Actualité"},
			{Key: "guide", Name: "Guide"},
			{Key: "review", Name: "Test & Avis"},
			{Key: "interview", Name: "Interview"},
			{Key: "dossier", Name: "Dossier"},
			{Key: "video", Name: "Vidéo"},
			{Key: "comparison", Name: "Comparatif"},
		},
	}
}
