package chinese

import "testing"

func TestLeftPadder(t *testing.T) {
	ctx := DefaultContext()

	padded := LeftPadder{Logogram: '零', MinWidth: 5, Source: Integer(37)}
	if got := padded.ToChinese(ctx).Text; got != "零零三十七" {
		t.Fatalf("padded 37 = %q", got)
	}

	wide := LeftPadder{Logogram: '零', MinWidth: 2, Source: Integer(365)}
	if got := wide.ToChinese(ctx).Text; got != "三百六十五" {
		t.Fatalf("already wide = %q", got)
	}
}

func TestLeftPadderOmissibility(t *testing.T) {
	ctx := DefaultContext()

	zero := LeftPadder{Logogram: '零', MinWidth: 3, Source: Integer(0)}.ToChinese(ctx)
	if zero.Text != "零零零" || !zero.Omissible {
		t.Fatalf("padded 0 = %q, omissible %v", zero.Text, zero.Omissible)
	}

	seven := LeftPadder{Logogram: '零', MinWidth: 2, Source: Integer(7)}.ToChinese(ctx)
	if seven.Omissible {
		t.Fatal("padded 7 should not be omissible")
	}
}
