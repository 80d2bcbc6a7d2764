package chinese

// Placeholder substitutes replacement logograms when the wrapped
// conversion turns out omissible. The omissible flag of the wrapped
// result is preserved either way, so surrounding layouts can still trim.
type Placeholder struct {
	Source      ToChinese
	Replacement Pair
}

// LingPlaceholder replaces omissible output with 零.
func LingPlaceholder(source ToChinese) Placeholder {
	return Placeholder{Source: source, Replacement: Pair{Simplified: "零", Traditional: "零"}}
}

// EmptyPlaceholder replaces omissible output with the empty string.
func EmptyPlaceholder(source ToChinese) Placeholder {
	return Placeholder{Source: source}
}

func (p Placeholder) ToChinese(ctx Context) Chinese {
	wrapped := Chinese{Omissible: true}
	if p.Source != nil {
		wrapped = p.Source.ToChinese(ctx)
	}
	if !wrapped.Omissible {
		return wrapped
	}
	return Chinese{Text: p.Replacement.ToChinese(ctx).Text, Omissible: true}
}
