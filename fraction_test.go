package chinese

import (
	"errors"
	"testing"
)

func TestNewFractionRejectsZeroDenominator(t *testing.T) {
	_, err := NewFraction(0, 3)
	if !errors.Is(err, ErrZeroDenominator) {
		t.Fatalf("err = %v", err)
	}
}

func TestFractionAccessors(t *testing.T) {
	f, err := NewFraction(8, 3)
	if err != nil {
		t.Fatal(err)
	}
	if f.Denominator() != 8 || f.Numerator() != 3 {
		t.Fatalf("fraction = %d/%d", f.Numerator(), f.Denominator())
	}
}

func TestFractionDenominatorFirst(t *testing.T) {
	ctx := DefaultContext()

	f, err := NewFraction(8, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Denominator first, then 分之, then the numerator.
	if got := f.ToChinese(ctx).Text; got != "八分之三" {
		t.Fatalf("8/3 = %q", got)
	}

	half, err := NewFraction(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := half.ToChinese(ctx).Text; got != "二分之一" {
		t.Fatalf("1/2 = %q", got)
	}
}

func TestFractionNegative(t *testing.T) {
	f, err := NewFraction(3, -11)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.ToChinese(DefaultContext()).Text; got != "负三分之十一" {
		t.Fatalf("-11/3 = %q", got)
	}
	if got := f.ToChinese(Context{Variant: Traditional}).Text; got != "負三分之十一" {
		t.Fatalf("traditional -11/3 = %q", got)
	}
}

func TestFractionZeroNumerator(t *testing.T) {
	f, err := NewFraction(8, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := f.ToChinese(DefaultContext())
	if got.Text != "零" || !got.Omissible {
		t.Fatalf("0/8 = %q, omissible %v", got.Text, got.Omissible)
	}
}
