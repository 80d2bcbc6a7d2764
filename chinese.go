package chinese

// Variant selects between the two major Chinese scripts.
type Variant int

const (
	Simplified Variant = iota
	Traditional
)

func (v Variant) String() string {
	if v == Traditional {
		return "traditional"
	}
	return "simplified"
}

// Chinese is a single rendered fragment of logograms.
//
// Omissible marks output that a surrounding layout is free to drop or
// replace: zero quantities, empty strings, absent optional components.
type Chinese struct {
	Text      string
	Omissible bool
}

// Context carries the stylistic configuration for a conversion call tree.
// It is a plain value: callers copy it freely and it is never mutated
// mid-conversion, so one Context may be shared across goroutines.
type Context struct {
	Variant   Variant
	Financial bool
}

// DefaultContext returns the zero-configuration context: Simplified
// script, common numerals.
func DefaultContext() Context {
	return Context{}
}

// WithVariant returns a copy of the context using the given script.
func (c Context) WithVariant(v Variant) Context {
	c.Variant = v
	return c
}

// WithFinancial returns a copy of the context toggling the anti-fraud
// numeral set.
func (c Context) WithFinancial(financial bool) Context {
	c.Financial = financial
	return c
}

// ToChinese is the conversion protocol every renderable type implements.
// Conversion is total: a value that exists is renderable, and anything
// that could fail is rejected when the value is constructed.
type ToChinese interface {
	ToChinese(ctx Context) Chinese
}
