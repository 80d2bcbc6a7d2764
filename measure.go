package chinese

// Measure pairs a quantity with its unit logogram. The rendering is the
// quantity followed by the unit; the whole term is omissible exactly
// when the quantity is.
type Measure struct {
	Value ToChinese
	Unit  ToChinese
}

func (m Measure) ToChinese(ctx Context) Chinese {
	value := Chinese{Omissible: true}
	if m.Value != nil {
		value = m.Value.ToChinese(ctx)
	}
	unit := Chinese{Omissible: true}
	if m.Unit != nil {
		unit = m.Unit.ToChinese(ctx)
	}
	return Chinese{Text: value.Text + unit.Text, Omissible: value.Omissible}
}

// CountMeasure builds a measure over a counted quantity, so 2 reads 两.
func CountMeasure(value uint64, unit ToChinese) Measure {
	return Measure{Value: Count(value), Unit: unit}
}

// ZeroPolicy governs what a zero-valued scale term contributes.
type ZeroPolicy int

const (
	// OmitZero drops the term silently.
	OmitZero ZeroPolicy = iota
	// GapZero drops the term but leaves a single 零 marker when the
	// zero sits between emitted higher and nonzero lower scales, so an
	// interior gap stays readable.
	GapZero
	// KeepZero always emits the term.
	KeepZero
)

// Scale is one step of a measure decomposition: divide by Divisor, emit
// the quotient with Unit, continue with the remainder.
type Scale struct {
	Divisor uint64
	Unit    ToChinese
	Zero    ZeroPolicy
}

// MeasureTable declares an ordered largest-to-smallest list of scales.
// A valid table decomposes every magnitude uniquely: divisors strictly
// decrease, each divides the previous, and the last is 1.
type MeasureTable struct {
	scales []Scale
}

func NewMeasureTable(scales ...Scale) (*MeasureTable, error) {
	if len(scales) == 0 {
		return nil, ErrEmptyMeasureTable
	}
	for i, sc := range scales {
		if sc.Divisor == 0 {
			return nil, ErrScaleOrder
		}
		if i > 0 {
			prev := scales[i-1].Divisor
			if sc.Divisor >= prev || prev%sc.Divisor != 0 {
				return nil, ErrScaleOrder
			}
		}
	}
	if scales[len(scales)-1].Divisor != 1 {
		return nil, ErrIncompleteScales
	}
	return &MeasureTable{scales: append([]Scale(nil), scales...)}, nil
}

// Scales returns a copy of the declared scales.
func (t *MeasureTable) Scales() []Scale {
	return append([]Scale(nil), t.scales...)
}

// Decompose splits a magnitude into per-scale quantities by successive
// integer division and remainder, in declared order.
func (t *MeasureTable) Decompose(magnitude uint64) []uint64 {
	parts := make([]uint64, len(t.scales))
	remaining := magnitude
	for i, sc := range t.scales {
		parts[i] = remaining / sc.Divisor
		remaining %= sc.Divisor
	}
	return parts
}

// New builds a value of this measure from a raw magnitude.
func (t *MeasureTable) New(magnitude uint64) MeasureValue {
	return MeasureValue{table: t, parts: t.Decompose(magnitude)}
}

// FromParts builds a value from per-scale quantities, in declared order.
// Each quantity after the first must stay below its scale's capacity, so
// the value round-trips through Magnitude and Decompose unchanged.
func (t *MeasureTable) FromParts(parts ...uint64) (MeasureValue, error) {
	if len(parts) != len(t.scales) {
		return MeasureValue{}, &OutOfRangeError{Field: "scale parts", Value: len(parts)}
	}
	for i := 1; i < len(parts); i++ {
		capacity := t.scales[i-1].Divisor / t.scales[i].Divisor
		if parts[i] >= capacity {
			return MeasureValue{}, &OutOfRangeError{Field: "scale part", Value: int(parts[i])}
		}
	}
	return MeasureValue{table: t, parts: append([]uint64(nil), parts...)}, nil
}

// MeasureValue is a magnitude decomposed across a measure table's
// scales, ready for rendering or per-scale inspection.
type MeasureValue struct {
	table *MeasureTable
	parts []uint64
}

// Part returns the quantity at the given scale index.
func (v MeasureValue) Part(i int) uint64 {
	return v.parts[i]
}

// Magnitude folds the parts back into the raw magnitude.
func (v MeasureValue) Magnitude() uint64 {
	var total uint64
	for i, sc := range v.table.scales {
		total += v.parts[i] * sc.Divisor
	}
	return total
}

// ToChinese runs the scale loop: each nonzero quantity renders as
// quantity plus unit; zero quantities follow their scale's policy. A
// wholly zero magnitude yields the designated zero term (零 plus the
// largest unit), never an empty sequence.
func (v MeasureValue) ToChinese(ctx Context) Chinese {
	var seq Sequence
	emitted := false
	pendingGap := false
	for i, sc := range v.table.scales {
		q := v.parts[i]
		if q == 0 {
			switch sc.Zero {
			case KeepZero:
				seq.Push(CountMeasure(0, sc.Unit).ToChinese(ctx))
				emitted = true
			case GapZero:
				if emitted {
					pendingGap = true
				}
			}
			continue
		}
		if pendingGap {
			seq.Push(Chinese{Text: digitLogograms[0]})
			pendingGap = false
		}
		seq.Push(CountMeasure(q, sc.Unit).ToChinese(ctx))
		emitted = true
	}
	if !emitted {
		return CountMeasure(0, v.table.scales[0].Unit).ToChinese(ctx)
	}
	return seq.Collect()
}
