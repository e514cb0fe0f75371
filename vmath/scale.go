package vmath

// Domain is a numeric range in data or pixel space, Min > Max is a valid inverted range
type Domain struct {
	Min, Max float64
}

// Span returns Max - Min, negative for inverted domains
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Mid returns the domain midpoint
func (d Domain) Mid() float64 {
	return (d.Min + d.Max) / 2
}

// Scale maps v from d into to
func (d Domain) Scale(v float64, to Domain) float64 {
	return ScaleValue(v, d.Min, d.Max, to.Min, to.Max)
}

// ScaleValue linearly maps value from [dataMin,dataMax] to [pixelMin,pixelMax]
// Input and output are not clamped; a degenerate data range returns the pixel midpoint
func ScaleValue(value, dataMin, dataMax, pixelMin, pixelMax float64) float64 {
	if dataMax == dataMin {
		return (pixelMin + pixelMax) / 2
	}
	return pixelMin + ((value-dataMin)/(dataMax-dataMin))*(pixelMax-pixelMin)
}

// Clamp bounds v to [lo,hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0,1], NaN maps to 0
func Clamp01(v float64) float64 {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}
