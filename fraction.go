package chinese

// Fraction is a ratio rendered denominator-first, the conventional
// Chinese word order: 分之 joins the denominator to the numerator.
type Fraction struct {
	denominator uint64
	numerator   int64
}

// NewFraction builds a fraction; the denominator comes first, as it
// reads in Chinese. A zero denominator fails with ErrZeroDenominator.
func NewFraction(denominator uint64, numerator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return Fraction{denominator: denominator, numerator: numerator}, nil
}

func (f Fraction) Denominator() uint64 {
	return f.denominator
}

func (f Fraction) Numerator() int64 {
	return f.numerator
}

// ToChinese renders the denominator, then 分之, then the numerator.
// A zero numerator collapses to an omissible 零 regardless of the
// denominator.
func (f Fraction) ToChinese(ctx Context) Chinese {
	if f.numerator == 0 {
		return Chinese{Text: "零", Omissible: true}
	}
	return Seq(ctx,
		Sign(f.numerator),
		Uint(f.denominator),
		Literal("分之"),
		Uint(magnitude(f.numerator)),
	).Collect()
}
