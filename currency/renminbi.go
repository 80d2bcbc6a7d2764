// Package currency renders monetary amounts, currently the renminbi
// (人民币). Amounts are thin applications of the measure mechanism: a
// yuan/jiao/fen scale table plus per-style unit words.
package currency

import (
	chinese "github.com/goliatone/go-chinese"
)

// Style selects the register used for units and numerals.
type Style int

const (
	// EverydayFormal uses 元 and 角 with common numerals.
	EverydayFormal Style = iota
	// EverydayInformal uses the colloquial 块 and 毛.
	EverydayInformal
	// Financial uses anti-fraud numerals and appends the terminator 整.
	Financial
)

func (s Style) String() string {
	switch s {
	case EverydayInformal:
		return "everyday-informal"
	case Financial:
		return "financial"
	default:
		return "everyday-formal"
	}
}

const financialTerminator = "整"

// Renminbi is an amount of 人民币, decomposed into yuan, jiao and fen.
// Build one through Builder or FromFen.
type Renminbi struct {
	yuan  uint64
	jiao  uint8
	fen   uint8
	style Style
}

// Builder assembles Renminbi amounts field by field.
type Builder struct {
	yuan  uint64
	jiao  uint8
	fen   uint8
	style Style
}

// NewBuilder starts from a zero amount in the everyday formal style.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithYuan sets the 元 (块) part.
func (b *Builder) WithYuan(yuan uint64) *Builder {
	b.yuan = yuan
	return b
}

// WithJiao sets the 角 (毛) part; values outside 0..9 fail at Build.
func (b *Builder) WithJiao(jiao uint8) *Builder {
	b.jiao = jiao
	return b
}

// WithFen sets the 分 part; values outside 0..9 fail at Build.
func (b *Builder) WithFen(fen uint8) *Builder {
	b.fen = fen
	return b
}

func (b *Builder) WithStyle(style Style) *Builder {
	b.style = style
	return b
}

// Build validates the subunit ranges and produces the amount. No
// partially-built amount ever reaches rendering.
func (b *Builder) Build() (Renminbi, error) {
	if b.jiao > 9 {
		return Renminbi{}, &chinese.OutOfRangeError{Field: "jiao", Value: int(b.jiao)}
	}
	if b.fen > 9 {
		return Renminbi{}, &chinese.OutOfRangeError{Field: "fen", Value: int(b.fen)}
	}
	return Renminbi{yuan: b.yuan, jiao: b.jiao, fen: b.fen, style: b.style}, nil
}

// FromFen decomposes a magnitude given in minor units (分).
func FromFen(totalFen uint64, style Style) Renminbi {
	return Renminbi{
		yuan:  totalFen / 100,
		jiao:  uint8(totalFen / 10 % 10),
		fen:   uint8(totalFen % 10),
		style: style,
	}
}

func (r Renminbi) Yuan() uint64 {
	return r.yuan
}

func (r Renminbi) Jiao() uint8 {
	return r.jiao
}

func (r Renminbi) Fen() uint8 {
	return r.fen
}

func (r Renminbi) Style() Style {
	return r.style
}

// Fen64 returns the whole amount in minor units.
func (r Renminbi) Fen64() uint64 {
	return r.yuan*100 + uint64(r.jiao)*10 + uint64(r.fen)
}

func (r Renminbi) yuanUnit() chinese.ToChinese {
	if r.style == EverydayInformal {
		return chinese.Literal("块")
	}
	return chinese.Literal("元")
}

func (r Renminbi) jiaoUnit() chinese.ToChinese {
	if r.style == EverydayInformal {
		return chinese.Literal("毛")
	}
	return chinese.Literal("角")
}

func (r Renminbi) table() *chinese.MeasureTable {
	table, err := chinese.NewMeasureTable(
		chinese.Scale{Divisor: 100, Unit: r.yuanUnit(), Zero: chinese.OmitZero},
		chinese.Scale{Divisor: 10, Unit: r.jiaoUnit(), Zero: chinese.GapZero},
		chinese.Scale{Divisor: 1, Unit: chinese.Literal("分"), Zero: chinese.OmitZero},
	)
	if err != nil {
		// The scale constants above always satisfy the table invariants.
		panic(err)
	}
	return table
}

// ToChinese renders the amount. A jiao gap between nonzero yuan and fen
// keeps its 零 marker in every style, matching conventional written
// amounts; trailing zero units are suppressed; a wholly zero amount
// reads 零元 (零块). Financial style switches to anti-fraud numerals and
// appends 整.
func (r Renminbi) ToChinese(ctx chinese.Context) chinese.Chinese {
	if r.style == Financial {
		ctx = ctx.WithFinancial(true)
	}

	body := r.table().New(r.Fen64()).ToChinese(ctx)
	if r.style != Financial {
		return body
	}
	return chinese.Chinese{
		Text:      body.Text + financialTerminator,
		Omissible: body.Omissible,
	}
}
