// Package plan 实现站点初始化的各类计划生成器
package plan

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stripDiacritics NFD 分解后去掉组合变音符号
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// slugify 小写、去变音、非字母数字折叠为单个连字符、去除首尾连字符
func slugify(s string) string {
	s = strings.ToLower(stripDiacritics(s))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // 抑制开头的连字符
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// AuthorSlug 作者展示名转 slug
func AuthorSlug(displayName string) string {
	return slugify(displayName)
}

// SlugifyCategory 分类名转 slug；“&” 替换为字面 “et”
func SlugifyCategory(name string) string {
	return slugify(strings.ReplaceAll(name, "&", " et "))
}
