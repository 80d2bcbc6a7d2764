package chinese

import "strings"

// Sequence is an ordered, owned buffer of Chinese fragments. It is the
// composition primitive every higher-level conversion builds on: partial
// results stay inspectable as fragments until Collect or Text flattens
// them.
type Sequence struct {
	items []Chinese
}

// Seq converts each item under the given context and gathers the results
// into a fresh Sequence. A nil item contributes an empty omissible
// fragment, so optional components can be passed directly.
func Seq(ctx Context, items ...ToChinese) Sequence {
	out := Sequence{items: make([]Chinese, 0, len(items))}
	for _, item := range items {
		if item == nil {
			out.items = append(out.items, Chinese{Omissible: true})
			continue
		}
		out.items = append(out.items, item.ToChinese(ctx))
	}
	return out
}

// SequenceOf wraps already-rendered fragments.
func SequenceOf(fragments ...Chinese) Sequence {
	return Sequence{items: append([]Chinese(nil), fragments...)}
}

// Push appends a fragment in place.
func (s *Sequence) Push(fragment Chinese) {
	s.items = append(s.items, fragment)
}

// Concat returns a sequence holding s's fragments followed by other's.
func (s Sequence) Concat(other Sequence) Sequence {
	items := make([]Chinese, 0, len(s.items)+len(other.items))
	items = append(items, s.items...)
	items = append(items, other.items...)
	return Sequence{items: items}
}

func (s Sequence) IsEmpty() bool {
	return len(s.items) == 0
}

func (s Sequence) Len() int {
	return len(s.items)
}

// Items returns a copy of the fragments, preserving render order.
func (s Sequence) Items() []Chinese {
	return append([]Chinese(nil), s.items...)
}

// TrimStart drops the leading run of omissible fragments.
func (s Sequence) TrimStart() Sequence {
	start := 0
	for start < len(s.items) && s.items[start].Omissible {
		start++
	}
	return Sequence{items: append([]Chinese(nil), s.items[start:]...)}
}

// TrimEnd drops the trailing run of omissible fragments.
func (s Sequence) TrimEnd() Sequence {
	end := len(s.items)
	for end > 0 && s.items[end-1].Omissible {
		end--
	}
	return Sequence{items: append([]Chinese(nil), s.items[:end]...)}
}

// Collect flattens the sequence into a single fragment. The result is
// omissible when the sequence is empty or every fragment is omissible.
func (s Sequence) Collect() Chinese {
	var sb strings.Builder
	omissible := true
	for _, item := range s.items {
		sb.WriteString(item.Text)
		if !item.Omissible {
			omissible = false
		}
	}
	return Chinese{Text: sb.String(), Omissible: omissible}
}

// Text flattens the fragments into printable text. Flattening is a
// homomorphism: Concat(a, b).Text() == a.Text() + b.Text().
func (s Sequence) Text() string {
	var sb strings.Builder
	for _, item := range s.items {
		sb.WriteString(item.Text)
	}
	return sb.String()
}

// ToChinese lets a finished sequence participate in further composition.
// The context is ignored: the fragments are already rendered.
func (s Sequence) ToChinese(_ Context) Chinese {
	return s.Collect()
}
