package chinese

// Sign renders the polarity prefix of a number: 负 (負) for negatives,
// an empty omissible fragment for zero and positives.
type Sign int64

func (s Sign) ToChinese(ctx Context) Chinese {
	if s >= 0 {
		return Chinese{Omissible: true}
	}
	return negativeWord.ToChinese(ctx)
}
