package currency

import (
	"errors"
	"testing"

	chinese "github.com/goliatone/go-chinese"
)

func TestBuilder(t *testing.T) {
	amount, err := NewBuilder().WithYuan(9).WithJiao(3).WithFen(8).Build()
	if err != nil {
		t.Fatal(err)
	}
	if amount.Yuan() != 9 || amount.Jiao() != 3 || amount.Fen() != 8 {
		t.Fatalf("amount = %+v", amount)
	}
	if amount.Style() != EverydayFormal {
		t.Fatalf("default style = %v", amount.Style())
	}
	if amount.Fen64() != 938 {
		t.Fatalf("Fen64 = %d", amount.Fen64())
	}
}

func TestBuilderOutOfRange(t *testing.T) {
	_, err := NewBuilder().WithJiao(10).Build()
	var oor *chinese.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("jiao err = %v", err)
	}
	if oor.Field != "jiao" || oor.Value != 10 {
		t.Fatalf("jiao err = %+v", oor)
	}

	_, err = NewBuilder().WithFen(12).Build()
	if !errors.As(err, &oor) {
		t.Fatalf("fen err = %v", err)
	}
	if oor.Field != "fen" || oor.Value != 12 {
		t.Fatalf("fen err = %+v", oor)
	}
}

func TestFromFen(t *testing.T) {
	amount := FromFen(938, EverydayFormal)
	if amount.Yuan() != 9 || amount.Jiao() != 3 || amount.Fen() != 8 {
		t.Fatalf("FromFen(938) = %+v", amount)
	}
	if amount.Fen64() != 938 {
		t.Fatalf("roundtrip = %d", amount.Fen64())
	}
}

func TestRenminbiEverydayFormal(t *testing.T) {
	ctx := chinese.DefaultContext()

	cases := []struct {
		fen  uint64
		want string
	}{
		{938, "九元三角八分"},
		{1200, "十二元"},
		{105, "一元零五分"},
		{740, "七元四角"},
		{30, "三角"},
		{2, "两分"},
		{0, "零元"},
		{200, "两元"},
	}

	for _, tc := range cases {
		got := FromFen(tc.fen, EverydayFormal).ToChinese(ctx).Text
		if got != tc.want {
			t.Fatalf("FromFen(%d) = %q, want %q", tc.fen, got, tc.want)
		}
	}
}

func TestRenminbiEverydayInformal(t *testing.T) {
	ctx := chinese.DefaultContext()

	amount, err := NewBuilder().
		WithYuan(7).
		WithJiao(4).
		WithFen(5).
		WithStyle(EverydayInformal).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := amount.ToChinese(ctx).Text; got != "七块四毛五分" {
		t.Fatalf("informal = %q", got)
	}

	if got := FromFen(0, EverydayInformal).ToChinese(ctx).Text; got != "零块" {
		t.Fatalf("informal zero = %q", got)
	}

	// The jiao gap marker stays in the informal register too.
	if got := FromFen(305, EverydayInformal).ToChinese(ctx).Text; got != "三块零五分" {
		t.Fatalf("informal gap = %q", got)
	}
}

func TestRenminbiFinancial(t *testing.T) {
	ctx := chinese.DefaultContext()

	amount, err := NewBuilder().
		WithYuan(2).
		WithJiao(6).
		WithFen(1).
		WithStyle(Financial).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := amount.ToChinese(ctx).Text; got != "贰元陆角壹分整" {
		t.Fatalf("financial = %q", got)
	}

	if got := FromFen(0, Financial).ToChinese(ctx).Text; got != "零元整" {
		t.Fatalf("financial zero = %q", got)
	}

	traditional := chinese.Context{Variant: chinese.Traditional}
	if got := FromFen(261, Financial).ToChinese(traditional).Text; got != "貳元陸角壹分整" {
		t.Fatalf("financial traditional = %q", got)
	}
}

func TestRenminbiOmissibility(t *testing.T) {
	ctx := chinese.DefaultContext()

	if FromFen(0, EverydayFormal).ToChinese(ctx).Omissible != true {
		t.Fatal("zero amount should be omissible")
	}
	if FromFen(938, EverydayFormal).ToChinese(ctx).Omissible {
		t.Fatal("nonzero amount should not be omissible")
	}
}

func TestStyleString(t *testing.T) {
	if EverydayFormal.String() != "everyday-formal" {
		t.Fatalf("formal = %q", EverydayFormal.String())
	}
	if EverydayInformal.String() != "everyday-informal" {
		t.Fatalf("informal = %q", EverydayInformal.String())
	}
	if Financial.String() != "financial" {
		t.Fatalf("financial = %q", Financial.String())
	}
}
