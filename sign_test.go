package chinese

import "testing"

func TestSign(t *testing.T) {
	ctx := DefaultContext()

	positive := Sign(90).ToChinese(ctx)
	if positive.Text != "" || !positive.Omissible {
		t.Fatalf("positive sign = %q, omissible %v", positive.Text, positive.Omissible)
	}

	zero := Sign(0).ToChinese(ctx)
	if zero.Text != "" || !zero.Omissible {
		t.Fatalf("zero sign = %q, omissible %v", zero.Text, zero.Omissible)
	}

	negative := Sign(-7).ToChinese(ctx)
	if negative.Text != "负" || negative.Omissible {
		t.Fatalf("negative sign = %q, omissible %v", negative.Text, negative.Omissible)
	}

	if got := Sign(-7).ToChinese(Context{Variant: Traditional}).Text; got != "負" {
		t.Fatalf("traditional negative = %q", got)
	}
}

func TestSignPrefixesNumeral(t *testing.T) {
	got := Seq(DefaultContext(), Sign(-5), Uint(5)).Text()
	if got != "负五" {
		t.Fatalf("signed 5 = %q", got)
	}
}
