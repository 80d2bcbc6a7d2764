package chinese

import "strings"

var digitLogograms = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// DigitSequence is an ordered run of single decimal digits, rendered
// one by one with no place-value grouping. It suits identifiers such as
// phone numbers, codes and year digits, where 零 is positionally
// significant.
type DigitSequence struct {
	digits []uint8
}

// NewDigitSequence validates that every digit is in 0..9.
func NewDigitSequence(digits ...uint8) (DigitSequence, error) {
	for _, d := range digits {
		if d > 9 {
			return DigitSequence{}, &OutOfRangeError{Field: "digit", Value: int(d)}
		}
	}
	return DigitSequence{digits: append([]uint8(nil), digits...)}, nil
}

// ParseDigitSequence reads a run of ASCII digits.
func ParseDigitSequence(s string) (DigitSequence, error) {
	digits := make([]uint8, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return DigitSequence{}, &OutOfRangeError{Field: "digit", Value: int(r)}
		}
		digits = append(digits, uint8(r-'0'))
	}
	return DigitSequence{digits: digits}, nil
}

// DigitsOf expands a non-negative integer into its decimal digits.
func DigitsOf(n uint64) DigitSequence {
	if n == 0 {
		return DigitSequence{digits: []uint8{0}}
	}
	var rev []uint8
	for v := n; v > 0; v /= 10 {
		rev = append(rev, uint8(v%10))
	}
	digits := make([]uint8, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	return DigitSequence{digits: digits}
}

func (d DigitSequence) IsEmpty() bool {
	return len(d.digits) == 0
}

func (d DigitSequence) Len() int {
	return len(d.digits)
}

// Digits returns a copy of the underlying digits.
func (d DigitSequence) Digits() []uint8 {
	return append([]uint8(nil), d.digits...)
}

// Uint folds the digits back into an integer.
func (d DigitSequence) Uint() uint64 {
	var n uint64
	for _, digit := range d.digits {
		n = n*10 + uint64(digit)
	}
	return n
}

// ToChinese renders each digit independently with the common digit set;
// the script variant makes no difference. Only the empty sequence is
// omissible; an explicit 0 digit is not.
func (d DigitSequence) ToChinese(_ Context) Chinese {
	var sb strings.Builder
	for _, digit := range d.digits {
		sb.WriteString(digitLogograms[digit])
	}
	return Chinese{Text: sb.String(), Omissible: len(d.digits) == 0}
}
