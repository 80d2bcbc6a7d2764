package chinese

// Literal passes text through untouched; only the empty string is
// omissible. Input is assumed to be Chinese-ready.
type Literal string

func (l Literal) ToChinese(_ Context) Chinese {
	return Chinese{Text: string(l), Omissible: l == ""}
}

// Pair is a word spelled differently in the two scripts. The context's
// variant selects which side renders; no conversion between scripts is
// ever attempted.
type Pair struct {
	Simplified  string
	Traditional string
}

func (p Pair) ToChinese(ctx Context) Chinese {
	text := p.Simplified
	if ctx.Variant == Traditional {
		text = p.Traditional
	}
	return Chinese{Text: text, Omissible: text == ""}
}

// Chain concatenates the conversions of its elements in declared order,
// with no separator. Callers needing separators compose them explicitly.
type Chain []ToChinese

func (c Chain) ToChinese(ctx Context) Chinese {
	return Seq(ctx, c...).Collect()
}

// Optional renders its value when present. An absent value yields the
// designated placeholder (零 unless overridden) as an omissible fragment,
// so positional layouts keep their shape and trimming still works.
type Optional struct {
	Value       ToChinese
	Placeholder ToChinese
}

// Opt wraps a possibly-nil convertible value.
func Opt(value ToChinese) Optional {
	return Optional{Value: value}
}

func (o Optional) ToChinese(ctx Context) Chinese {
	if o.Value != nil {
		return o.Value.ToChinese(ctx)
	}
	placeholder := o.Placeholder
	if placeholder == nil {
		placeholder = Literal("零")
	}
	rendered := placeholder.ToChinese(ctx)
	return Chinese{Text: rendered.Text, Omissible: true}
}
