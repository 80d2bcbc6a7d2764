package chinese

import "strings"

// numeralTable is an immutable set of logograms used to spell out
// integers with the ten-thousand grouping method. The tables are built
// once at package load and only read afterwards.
type numeralTable struct {
	digits   [10]string
	ten      string
	hundred  string
	thousand string
	// group units for 10^4, 10^8, 10^12, 10^16; index 0 is unused.
	groups [5]string
}

var (
	commonSimplified = &numeralTable{
		digits:   [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		ten:      "十",
		hundred:  "百",
		thousand: "千",
		groups:   [5]string{"", "万", "亿", "兆", "京"},
	}

	commonTraditional = &numeralTable{
		digits:   [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
		ten:      "十",
		hundred:  "百",
		thousand: "千",
		groups:   [5]string{"", "萬", "億", "兆", "京"},
	}

	financialSimplified = &numeralTable{
		digits:   [10]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"},
		ten:      "拾",
		hundred:  "佰",
		thousand: "仟",
		groups:   [5]string{"", "万", "亿", "兆", "京"},
	}

	financialTraditional = &numeralTable{
		digits:   [10]string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"},
		ten:      "拾",
		hundred:  "佰",
		thousand: "仟",
		groups:   [5]string{"", "萬", "億", "兆", "京"},
	}
)

func tableFor(ctx Context) *numeralTable {
	if ctx.Financial {
		if ctx.Variant == Traditional {
			return financialTraditional
		}
		return financialSimplified
	}
	if ctx.Variant == Traditional {
		return commonTraditional
	}
	return commonSimplified
}

// formatUint spells out n with the ten-thousand grouping method.
// Interior zero runs collapse to a single 零; numbers 10 through 19
// drop the leading unit digit (十七, not 一十七).
func formatUint(n uint64, t *numeralTable) string {
	if n == 0 {
		return t.digits[0]
	}

	var groups [5]uint64
	count := 0
	for v := n; v > 0; v /= 10000 {
		groups[count] = v % 10000
		count++
	}

	var sb strings.Builder
	written := false
	skippedZero := false
	for i := count - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			if written {
				skippedZero = true
			}
			continue
		}
		if written && (skippedZero || g < 1000) {
			sb.WriteString(t.digits[0])
		}
		sb.WriteString(formatGroup(g, t))
		if i > 0 {
			sb.WriteString(t.groups[i])
		}
		written = true
		skippedZero = false
	}

	out := sb.String()
	if n >= 10 && n <= 19 {
		out = strings.TrimPrefix(out, t.digits[1])
	}
	return out
}

// formatGroup spells out a value in 1..9999.
func formatGroup(g uint64, t *numeralTable) string {
	units := [4]string{"", t.ten, t.hundred, t.thousand}
	divisors := [4]uint64{1, 10, 100, 1000}

	var sb strings.Builder
	written := false
	pendingZero := false
	for pos := 3; pos >= 0; pos-- {
		d := (g / divisors[pos]) % 10
		if d == 0 {
			if written {
				pendingZero = true
			}
			continue
		}
		if pendingZero {
			sb.WriteString(t.digits[0])
			pendingZero = false
		}
		sb.WriteString(t.digits[d])
		sb.WriteString(units[pos])
		written = true
	}
	return sb.String()
}
