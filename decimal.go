package chinese

var decimalPoint = Pair{Simplified: "点", Traditional: "點"}

// Decimal is a real number split into a grouped integer part and a
// digit-by-digit fractional run of arbitrary length.
type Decimal struct {
	Integer    int64
	Fractional DigitSequence
}

func (d Decimal) ToChinese(ctx Context) Chinese {
	if d.Fractional.IsEmpty() {
		return Integer(d.Integer).ToChinese(ctx)
	}
	return Seq(ctx, Integer(d.Integer), decimalPoint, d.Fractional).Collect()
}
