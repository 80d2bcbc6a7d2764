package chinese

var negativeWord = Pair{Simplified: "负", Traditional: "負"}

// Integer renders a signed integer with grouped numerals. Negative
// values are prefixed with the negative logogram; only zero is
// omissible.
type Integer int64

func (n Integer) ToChinese(ctx Context) Chinese {
	body := formatUint(magnitude(int64(n)), tableFor(ctx))
	if n < 0 {
		body = negativeWord.ToChinese(ctx).Text + body
	}
	return Chinese{Text: body, Omissible: n == 0}
}

// Uint renders an unsigned integer with grouped numerals.
type Uint uint64

func (n Uint) ToChinese(ctx Context) Chinese {
	return Chinese{Text: formatUint(uint64(n), tableFor(ctx)), Omissible: n == 0}
}

// Count is an unsigned quantity produced by counting. It reads like a
// standard number except for 2, which becomes 两 (兩) in the common
// register.
type Count uint64

func (n Count) ToChinese(ctx Context) Chinese {
	if n == 2 && !ctx.Financial {
		return Pair{Simplified: "两", Traditional: "兩"}.ToChinese(ctx)
	}
	return Uint(n).ToChinese(ctx)
}

// Financial renders with the anti-fraud numeral set no matter what the
// context says, for amounts that must resist alteration.
type Financial uint64

func (n Financial) ToChinese(ctx Context) Chinese {
	return Uint(n).ToChinese(ctx.WithFinancial(true))
}

// magnitude returns |n| without overflowing on the minimum value.
func magnitude(n int64) uint64 {
	if n >= 0 {
		return uint64(n)
	}
	return uint64(-(n + 1)) + 1
}
