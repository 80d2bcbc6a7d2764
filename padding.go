package chinese

import (
	"strings"
	"unicode/utf8"
)

// LeftPadder pads the source's output on the left with a logogram until
// it reaches MinWidth logograms. Output already wide enough passes
// through untouched; omissibility always follows the source.
type LeftPadder struct {
	Logogram rune
	MinWidth int
	Source   ToChinese
}

func (p LeftPadder) ToChinese(ctx Context) Chinese {
	source := Chinese{Omissible: true}
	if p.Source != nil {
		source = p.Source.ToChinese(ctx)
	}
	width := utf8.RuneCountInString(source.Text)
	if width >= p.MinWidth {
		return source
	}
	padding := strings.Repeat(string(p.Logogram), p.MinWidth-width)
	return Chinese{Text: padding + source.Text, Omissible: source.Omissible}
}
