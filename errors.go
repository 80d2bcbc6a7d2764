package chinese

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator rejects fractions built with a zero denominator.
var ErrZeroDenominator = errors.New("chinese: zero passed as denominator")

// ErrEmptyMeasureTable rejects measure tables declared without scales.
var ErrEmptyMeasureTable = errors.New("chinese: measure table needs at least one scale")

// ErrScaleOrder rejects scale divisors that are not strictly decreasing
// or not evenly nested.
var ErrScaleOrder = errors.New("chinese: scale divisors must be strictly decreasing and nested")

// ErrIncompleteScales rejects tables whose smallest divisor is not 1,
// since the decomposition would not cover every magnitude.
var ErrIncompleteScales = errors.New("chinese: scale table must end with divisor 1")

// OutOfRangeError reports a field built with a value outside its valid
// range. Validation happens at construction, never during conversion.
type OutOfRangeError struct {
	Field string
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Field, e.Value)
}
