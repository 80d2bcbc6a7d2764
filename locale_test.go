package chinese

import (
	"testing"

	"golang.org/x/text/language"
)

func TestVariantForLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   Variant
	}{
		{"zh", Simplified},
		{"zh-CN", Simplified},
		{"zh-Hans", Simplified},
		{"zh-SG", Simplified},
		{"zh-TW", Traditional},
		{"zh-HK", Traditional},
		{"zh-Hant", Traditional},
		{"zh-Hant-HK", Traditional},
		{"zh_TW", Traditional},
		{"zh_Hant", Traditional},
		{" zh-tw ", Traditional},
		{"", Simplified},
		{"en-US", Simplified},
		{"not a tag", Simplified},
	}

	for _, tc := range cases {
		if got := VariantForLocale(tc.locale); got != tc.want {
			t.Fatalf("VariantForLocale(%q) = %v, want %v", tc.locale, got, tc.want)
		}
	}
}

func TestVariantForTag(t *testing.T) {
	if got := VariantForTag(language.TraditionalChinese); got != Traditional {
		t.Fatalf("zh-Hant = %v", got)
	}
	if got := VariantForTag(language.SimplifiedChinese); got != Simplified {
		t.Fatalf("zh-Hans = %v", got)
	}
	if got := VariantForTag(language.English); got != Simplified {
		t.Fatalf("en = %v", got)
	}
}

func TestContextForLocale(t *testing.T) {
	ctx := ContextForLocale("zh-TW")
	if ctx.Variant != Traditional || ctx.Financial {
		t.Fatalf("ctx = %+v", ctx)
	}

	got := Integer(10000).ToChinese(ctx).Text
	if got != "一萬" {
		t.Fatalf("10000 under zh-TW = %q", got)
	}
}
