package gregorian

import (
	chinese "github.com/goliatone/go-chinese"
)

// DayPart is one of the eight traditional parts of the day-night cycle,
// a finer-grained counterpart of a.m./p.m. Each part conventionally
// lasts three hours, starting with 早上 at 5.
type DayPart int

const (
	EarlyMorning DayPart = iota
	Morning
	Midday
	Afternoon
	EarlyEvening
	Evening
	Midnight
	LateNight
)

// DayPartOf needs a 24-hour value, since the clock-face hour alone
// cannot tell day from night.
func DayPartOf(h Hour24) DayPart {
	switch {
	case h.value >= 5 && h.value <= 7:
		return EarlyMorning
	case h.value >= 8 && h.value <= 10:
		return Morning
	case h.value >= 11 && h.value <= 13:
		return Midday
	case h.value >= 14 && h.value <= 16:
		return Afternoon
	case h.value >= 17 && h.value <= 19:
		return EarlyEvening
	case h.value >= 20 && h.value <= 22:
		return Evening
	case h.value == 23 || h.value <= 1:
		return Midnight
	default:
		return LateNight
	}
}

var dayPartWords = map[DayPart]string{
	EarlyMorning: "早上",
	Morning:      "上午",
	Midday:       "中午",
	Afternoon:    "下午",
	EarlyEvening: "傍晚",
	Evening:      "晚上",
	Midnight:     "午夜",
	LateNight:    "深夜",
}

// ToChinese renders the part of the day; the logograms are the same in
// both script variants.
func (p DayPart) ToChinese(_ chinese.Context) chinese.Chinese {
	return chinese.Chinese{Text: dayPartWords[p]}
}
