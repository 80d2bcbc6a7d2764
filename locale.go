package chinese

import (
	"strings"

	"golang.org/x/text/language"
)

var variantMatcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
})

// VariantForTag resolves a BCP 47 tag onto the script variant used for
// output. Anything that does not match Traditional Chinese falls back
// to Simplified.
func VariantForTag(tag language.Tag) Variant {
	_, index, _ := variantMatcher.Match(tag)
	if index == 1 {
		return Traditional
	}
	return Simplified
}

// VariantForLocale resolves a locale identifier such as "zh-TW" or
// "zh_Hant" after normalizing underscores to hyphens.
func VariantForLocale(locale string) Variant {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if normalized == "" {
		return Simplified
	}
	return VariantForTag(language.Make(normalized))
}

// ContextForLocale is a convenience for callers that start from a
// locale identifier rather than an explicit Variant.
func ContextForLocale(locale string) Context {
	return Context{Variant: VariantForLocale(locale)}
}
