// Package gregorian renders Gregorian dates and times in Chinese.
//
// DateBuilder is the entry point for dates; LinearTime and DeltaTime
// cover time expressions. All range and consistency checks happen when
// a value is built; conversion itself never fails.
package gregorian

import (
	chinese "github.com/goliatone/go-chinese"
)

// validPatterns are the renderable combinations of date components,
// keyed by the presence flags y/m/d/w in that order.
var validPatterns = map[string]bool{
	"y":    true,
	"m":    true,
	"d":    true,
	"w":    true,
	"ym":   true,
	"ymd":  true,
	"md":   true,
	"mdw":  true,
	"dw":   true,
	"ymdw": true,
}

// DateBuilder assembles a Date from individual components. Upon Build
// it validates field ranges, the component pattern, and the existence
// of the day within its month; week-day consistency is deliberately not
// checked, so any week day may accompany any date.
type DateBuilder struct {
	year       *int
	month      *int
	day        *int
	weekDay    *WeekDay
	formal     bool
	weekFormat WeekFormat
}

// NewDateBuilder starts a builder with the formal day unit (号) and the
// 星期 week format.
func NewDateBuilder() *DateBuilder {
	return &DateBuilder{formal: true}
}

// WithYear sets the year, rendered digit by digit.
func (b *DateBuilder) WithYear(year int) *DateBuilder {
	b.year = &year
	return b
}

// WithMonth sets the month; must be in 1..12 when built.
func (b *DateBuilder) WithMonth(month int) *DateBuilder {
	b.month = &month
	return b
}

// WithDay sets the day of the month; must be in 1..31 and exist in the
// month when built.
func (b *DateBuilder) WithDay(day int) *DateBuilder {
	b.day = &day
	return b
}

func (b *DateBuilder) WithWeekDay(day WeekDay) *DateBuilder {
	b.weekDay = &day
	return b
}

// WithFormal selects the day unit: 号 (號) when formal, 日 otherwise.
func (b *DateBuilder) WithFormal(formal bool) *DateBuilder {
	b.formal = formal
	return b
}

func (b *DateBuilder) WithWeekFormat(format WeekFormat) *DateBuilder {
	b.weekFormat = format
	return b
}

func (b *DateBuilder) pattern() string {
	var pattern []byte
	if b.year != nil {
		pattern = append(pattern, 'y')
	}
	if b.month != nil {
		pattern = append(pattern, 'm')
	}
	if b.day != nil {
		pattern = append(pattern, 'd')
	}
	if b.weekDay != nil {
		pattern = append(pattern, 'w')
	}
	return string(pattern)
}

func (b *DateBuilder) validateConsistency() error {
	if b.month == nil || b.day == nil {
		return nil
	}
	// No year means leap years stay possible, so February 29 passes.
	leap := true
	if b.year != nil {
		leap = isLeap(*b.year)
	}

	maxDay := 31
	switch *b.month {
	case 4, 6, 9, 11:
		maxDay = 30
	case 2:
		maxDay = 28
		if leap {
			maxDay = 29
		}
	}
	if *b.day > maxDay {
		err := &InvalidDateError{Month: *b.month, Day: *b.day}
		if b.year != nil {
			err.Year = *b.year
			err.HasYear = true
		}
		return err
	}
	return nil
}

// Build validates and produces the Date. Rejection is immediate and
// explicit: no field is ever coerced or silently substituted.
func (b *DateBuilder) Build() (Date, error) {
	if pattern := b.pattern(); !validPatterns[pattern] {
		return Date{}, &InvalidPatternError{Pattern: pattern}
	}
	if b.year != nil && *b.year < 0 {
		return Date{}, &chinese.OutOfRangeError{Field: "year", Value: *b.year}
	}
	if b.month != nil && (*b.month < 1 || *b.month > 12) {
		return Date{}, &chinese.OutOfRangeError{Field: "month", Value: *b.month}
	}
	if b.day != nil && (*b.day < 1 || *b.day > 31) {
		return Date{}, &chinese.OutOfRangeError{Field: "day", Value: *b.day}
	}
	if err := b.validateConsistency(); err != nil {
		return Date{}, err
	}

	date := Date{formal: b.formal, weekFormat: b.weekFormat}
	if b.year != nil {
		year := *b.year
		date.year = &year
	}
	if b.month != nil {
		month := *b.month
		date.month = &month
	}
	if b.day != nil {
		day := *b.day
		date.day = &day
	}
	if b.weekDay != nil {
		weekDay := *b.weekDay
		date.weekDay = &weekDay
	}
	return date, nil
}

// Date is a validated, possibly partial Gregorian date. Build one with
// DateBuilder.
type Date struct {
	year       *int
	month      *int
	day        *int
	weekDay    *WeekDay
	formal     bool
	weekFormat WeekFormat
}

// Year returns the year component, if any.
func (d Date) Year() (int, bool) {
	if d.year == nil {
		return 0, false
	}
	return *d.year, true
}

func (d Date) Month() (int, bool) {
	if d.month == nil {
		return 0, false
	}
	return *d.month, true
}

func (d Date) Day() (int, bool) {
	if d.day == nil {
		return 0, false
	}
	return *d.day, true
}

func (d Date) WeekDay() (WeekDay, bool) {
	if d.weekDay == nil {
		return Sunday, false
	}
	return *d.weekDay, true
}

func (d Date) ToChinese(ctx chinese.Context) chinese.Chinese {
	var seq chinese.Sequence
	if d.year != nil {
		seq.Push(chinese.Measure{
			Value: chinese.DigitsOf(uint64(*d.year)),
			Unit:  chinese.Literal("年"),
		}.ToChinese(ctx))
	}
	if d.month != nil {
		seq.Push(chinese.Measure{
			Value: chinese.Integer(*d.month),
			Unit:  chinese.Literal("月"),
		}.ToChinese(ctx))
	}
	if d.day != nil {
		unit := chinese.ToChinese(chinese.Literal("日"))
		if d.formal {
			unit = chinese.Pair{Simplified: "号", Traditional: "號"}
		}
		seq.Push(chinese.Measure{
			Value: chinese.Integer(*d.day),
			Unit:  unit,
		}.ToChinese(ctx))
	}
	if d.weekDay != nil {
		seq.Push(styledWeekDay{format: d.weekFormat, day: *d.weekDay}.ToChinese(ctx))
	}
	return seq.TrimEnd().Collect()
}

// isLeap follows the standard Gregorian rule.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
