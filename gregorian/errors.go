package gregorian

import "fmt"

// InvalidDateError reports a day that does not exist in its month
// (for example February 30th, or February 29th outside a leap year).
type InvalidDateError struct {
	Year    int
	HasYear bool
	Month   int
	Day     int
}

func (e *InvalidDateError) Error() string {
	if e.HasYear {
		return fmt.Sprintf("invalid date: %d-%d-%d", e.Year, e.Month, e.Day)
	}
	return fmt.Sprintf("invalid date: %d-%d", e.Month, e.Day)
}

// InvalidPatternError reports a combination of date components that
// does not form a renderable pattern (such as year plus day without a
// month).
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid date pattern: %s", e.Pattern)
}
