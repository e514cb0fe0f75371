package vmath

import "math"

// DefaultTickCount is used when a caller passes a non-positive target
const DefaultTickCount = 5

// CalculateTickInterval returns a 1, 2 or 5 x 10^n spacing giving about targetTicks steps over rng
func CalculateTickInterval(rng float64, targetTicks int) float64 {
	if targetTicks <= 0 {
		targetTicks = DefaultTickCount
	}
	rng = math.Abs(rng)
	if rng == 0 || math.IsNaN(rng) || math.IsInf(rng, 0) {
		return 1
	}

	rough := rng / float64(targetTicks)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	normalized := rough / magnitude

	var snapped float64
	switch {
	case normalized <= 1:
		snapped = 1
	case normalized <= 2:
		snapped = 2
	case normalized <= 5:
		snapped = 5
	default:
		snapped = 10
	}
	return snapped * magnitude
}

// GenerateTicks returns ascending ticks covering [min,max]
// The first tick is the interval multiple at or below min, the last tick is exactly max.
// A NaN or infinite bound is dropped: only the finite bound is returned, nil when neither is.
func GenerateTicks(min, max float64, targetTicks int) []float64 {
	if !finite(min) || !finite(max) {
		return finiteOnly(min, max)
	}
	if targetTicks <= 0 {
		targetTicks = DefaultTickCount
	}
	if min == max {
		return []float64{min}
	}
	if min > max {
		min, max = max, min
	}

	interval := CalculateTickInterval(max-min, targetTicks)
	first := math.Floor(min / interval)

	// a snapped interval yields at most targetTicks+2 multiples in range;
	// the cap also holds when first is too large for k+1 to be representable
	ticks := make([]float64, 0, targetTicks+2)
	for i := 0; i <= targetTicks+2; i++ {
		tick := roundToInterval((first+float64(i))*interval, interval)
		if tick > max {
			break
		}
		if len(ticks) > 0 && tick <= ticks[len(ticks)-1] {
			continue
		}
		ticks = append(ticks, tick)
	}

	if len(ticks) == 0 || ticks[len(ticks)-1] < max {
		ticks = append(ticks, max)
	}
	return ticks
}

// NiceDomain widens [min,max] outward to the enclosing tick multiples
// Non-finite bounds are returned unchanged
func NiceDomain(min, max float64, targetTicks int) Domain {
	if !finite(min) || !finite(max) {
		return Domain{Min: min, Max: max}
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return Domain{Min: min - 1, Max: max + 1}
	}
	interval := CalculateTickInterval(max-min, targetTicks)
	return Domain{
		Min: roundToInterval(math.Floor(min/interval)*interval, interval),
		Max: roundToInterval(math.Ceil(max/interval)*interval, interval),
	}
}

// roundToInterval strips float noise below the interval's decimal precision
func roundToInterval(v, interval float64) float64 {
	decimals := -math.Floor(math.Log10(interval))
	if decimals <= 0 {
		return v
	}
	pow := math.Pow(10, decimals)
	return math.Round(v*pow) / pow
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOnly(vs ...float64) []float64 {
	var out []float64
	for _, v := range vs {
		if finite(v) {
			out = append(out, v)
		}
	}
	return out
}
