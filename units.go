package chinese

// Everyday count measures. 斤 is the unit most commonly heard for
// weight, though 公斤 is available too.

func HalfKilogram(value uint64) Measure {
	return CountMeasure(value, Literal("斤"))
}

func Kilogram(value uint64) Measure {
	return CountMeasure(value, Literal("公斤"))
}

func Meter(value uint64) Measure {
	return CountMeasure(value, Literal("米"))
}

func Centimeter(value uint64) Measure {
	return CountMeasure(value, Pair{Simplified: "厘米", Traditional: "釐米"})
}

func Kilometer(value uint64) Measure {
	return CountMeasure(value, Literal("公里"))
}
