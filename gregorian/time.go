package gregorian

import (
	chinese "github.com/goliatone/go-chinese"
)

var hourWord = chinese.Pair{Simplified: "点", Traditional: "點"}

// Hour24 is the hour of a digital clock, 0..23.
type Hour24 struct {
	value int
}

func NewHour24(value int) (Hour24, error) {
	if value < 0 || value > 23 {
		return Hour24{}, &chinese.OutOfRangeError{Field: "hour", Value: value}
	}
	return Hour24{value: value}, nil
}

func (h Hour24) Value() int {
	return h.value
}

func (h Hour24) ToChinese(ctx chinese.Context) chinese.Chinese {
	return chinese.Seq(ctx, chinese.Count(h.value), hourWord).Collect()
}

// Hour12 is the hour shown by an analog clock, 1..12.
type Hour12 struct {
	value int
}

func NewHour12(value int) (Hour12, error) {
	if value < 1 || value > 12 {
		return Hour12{}, &chinese.OutOfRangeError{Field: "hour", Value: value}
	}
	return Hour12{value: value}, nil
}

// Hour12Of folds a 24-hour value onto the analog clock face; both 0 and
// 12 land on 12.
func Hour12Of(h Hour24) Hour12 {
	switch {
	case h.value == 0:
		return Hour12{value: 12}
	case h.value <= 12:
		return Hour12{value: h.value}
	default:
		return Hour12{value: h.value - 12}
	}
}

func (h Hour12) Value() int {
	return h.value
}

// Next returns the following hour on the clock face; 12 wraps to 1.
func (h Hour12) Next() Hour12 {
	if h.value == 12 {
		return Hour12{value: 1}
	}
	return Hour12{value: h.value + 1}
}

func (h Hour12) ToChinese(ctx chinese.Context) chinese.Chinese {
	return chinese.Seq(ctx, chinese.Count(h.value), hourWord).Collect()
}

// Minute is a minute past the hour, 0..59. It reads as a standard
// number, so 2 is 二分, not 两分.
type Minute struct {
	value int
}

func NewMinute(value int) (Minute, error) {
	if value < 0 || value > 59 {
		return Minute{}, &chinese.OutOfRangeError{Field: "minute", Value: value}
	}
	return Minute{value: value}, nil
}

func (m Minute) Value() int {
	return m.value
}

// Complement returns the minutes remaining to the next hour. It is not
// defined for 0, whose complement would leave the 0..59 range.
func (m Minute) Complement() (Minute, error) {
	return NewMinute(60 - m.value)
}

func (m Minute) ToChinese(ctx chinese.Context) chinese.Chinese {
	return chinese.Measure{Value: chinese.Integer(m.value), Unit: chinese.Literal("分")}.ToChinese(ctx)
}

// Second is a second past the minute, 0..59.
type Second struct {
	value int
}

func NewSecond(value int) (Second, error) {
	if value < 0 || value > 59 {
		return Second{}, &chinese.OutOfRangeError{Field: "second", Value: value}
	}
	return Second{value: value}, nil
}

func (s Second) Value() int {
	return s.value
}

func (s Second) ToChinese(ctx chinese.Context) chinese.Chinese {
	return chinese.Measure{Value: chinese.Integer(s.value), Unit: chinese.Literal("秒")}.ToChinese(ctx)
}

// LinearTime reads time linearly, day part down to second. Hour and
// minute are required; zero-valued trailing components drop out of the
// rendering.
type LinearTime struct {
	// WithDayPart includes the traditional part of the day and switches
	// the hour to the analog clock face.
	WithDayPart bool

	Hour   Hour24
	Minute Minute
	Second *Second
}

func (t LinearTime) ToChinese(ctx chinese.Context) chinese.Chinese {
	var seq chinese.Sequence
	if t.WithDayPart {
		seq.Push(DayPartOf(t.Hour).ToChinese(ctx))
		seq.Push(Hour12Of(t.Hour).ToChinese(ctx))
	} else {
		seq.Push(t.Hour.ToChinese(ctx))
	}
	seq.Push(chinese.EmptyPlaceholder(t.Minute).ToChinese(ctx))
	if t.Second != nil {
		seq.Push(chinese.EmptyPlaceholder(*t.Second).ToChinese(ctx))
	}
	return seq.Collect()
}

var (
	clockWord   = chinese.Pair{Simplified: "钟", Traditional: "鐘"}
	pastWord    = chinese.Pair{Simplified: "过", Traditional: "過"}
	quarterWord = chinese.Literal("刻")
	halfWord    = chinese.Literal("半")
	toWord      = chinese.Literal("差")
)

// DeltaTime reads time as minutes past or to an analog-clock hour:
// 六点钟, 六点过五分, 六点刻, 六点半, 六点三刻, 七点差一分.
type DeltaTime struct {
	Hour   Hour12
	Minute Minute
}

func (t DeltaTime) ToChinese(ctx chinese.Context) chinese.Chinese {
	switch m := t.Minute.value; {
	case m == 0:
		return chinese.Seq(ctx, t.Hour, clockWord).Collect()
	case m == 15:
		return chinese.Seq(ctx, t.Hour, quarterWord).Collect()
	case m == 30:
		return chinese.Seq(ctx, t.Hour, halfWord).Collect()
	case m == 45:
		return chinese.Seq(ctx, t.Hour, chinese.Integer(3), quarterWord).Collect()
	case m < 30:
		return chinese.Seq(ctx, t.Hour, pastWord, t.Minute).Collect()
	default:
		// The complement of a minute in 31..59 is always in range.
		complement, _ := t.Minute.Complement()
		return chinese.Seq(ctx, t.Hour.Next(), toWord, complement).Collect()
	}
}
