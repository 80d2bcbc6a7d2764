package gregorian

import (
	chinese "github.com/goliatone/go-chinese"
)

// WeekDay is a day of the week, Sunday first so the ordinal matches the
// 0=Sunday convention.
type WeekDay int

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekDayFromOrdinal converts 0..6 (0 = Sunday) into a WeekDay.
func WeekDayFromOrdinal(ordinal int) (WeekDay, error) {
	if ordinal < 0 || ordinal > 6 {
		return Sunday, &chinese.OutOfRangeError{Field: "week day", Value: ordinal}
	}
	return WeekDay(ordinal), nil
}

// WeekFormat is the word used to express a week.
type WeekFormat int

const (
	// XingQi is 星期, the default.
	XingQi WeekFormat = iota
	// Zhou is 周.
	Zhou
	// LiBai is 礼拜 (禮拜).
	LiBai
)

func (f WeekFormat) ToChinese(ctx chinese.Context) chinese.Chinese {
	switch f {
	case Zhou:
		return chinese.Literal("周").ToChinese(ctx)
	case LiBai:
		return chinese.Pair{Simplified: "礼拜", Traditional: "禮拜"}.ToChinese(ctx)
	default:
		return chinese.Literal("星期").ToChinese(ctx)
	}
}

// styledWeekDay renders a week day under a chosen week format. Sunday
// is irregular: 天 after 星期/礼拜, 日 after 周.
type styledWeekDay struct {
	format WeekFormat
	day    WeekDay
}

func (s styledWeekDay) ToChinese(ctx chinese.Context) chinese.Chinese {
	var ordinal chinese.ToChinese
	if s.day == Sunday {
		if s.format == Zhou {
			ordinal = chinese.Literal("日")
		} else {
			ordinal = chinese.Literal("天")
		}
	} else {
		ordinal = chinese.Integer(s.day)
	}
	return chinese.Seq(ctx, s.format, ordinal).Collect()
}
