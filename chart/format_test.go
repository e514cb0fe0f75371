package chart

import (
	"math"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		maxLen int
		want   string
	}{
		{"millions", 1234567, 8, "1.23M"},
		{"billions", 2.5e9, 8, "2.50B"},
		{"thousands", 1500, 8, "1.50K"},
		{"negative thousands", -1500, 8, "-1.50K"},
		{"tiny", 0.001, 8, "1.00e-3"},
		{"tiny negative", -0.0042, 8, "-4.20e-3"},
		{"nan", math.NaN(), 8, "NaN"},
		{"inf", math.Inf(-1), 8, "NaN"},
		{"zero", 0, 8, "0.00"},
		{"plain", 3.14159, 8, "3.14"},
		{"boundary hundredth", 0.01, 8, "0.01"},
		{"precision fallback", 999.5, 5, "1000"},
		{"fits", 999.5, 6, "999.50"},
		{"default length", 12.346, 0, "12.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value, tt.maxLen))
		})
	}
}

func TestFormatNumberFallbackMayExceedLength(t *testing.T) {
	// Zero decimals is the last resort, the result is not forced to fit
	assert.Equal(t, "999", FormatNumber(999, 2))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "50%", FormatPercentage(0.5))
	assert.Equal(t, "0%", FormatPercentage(0))
	assert.Equal(t, "150%", FormatPercentage(1.5))
	assert.Equal(t, "-25%", FormatPercentage(-0.25))
	assert.Equal(t, "13%", FormatPercentage(0.125))
	assert.Equal(t, "0%", FormatPercentage(-0.001))
}

func TestFormatPercentageNonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "NaN%", FormatPercentage(tt.v))
		})
	}
}

func TestAxisLabels(t *testing.T) {
	assert.Equal(t, "20.00 ", XAxisLabel(20, 6))
	assert.Equal(t, "20  ", XAxisLabel(20, 4))
	assert.Equal(t, "  1.23M", YAxisLabel(1234567, 7))
	assert.Equal(t, "", XAxisLabel(1, 0))
	assert.Equal(t, "", YAxisLabel(1, -2))

	for _, w := range []int{1, 2, 3, 5, 8} {
		for _, v := range []float64{0, 1, 99.9, 123456, 1e12, math.NaN()} {
			assert.Equal(t, w, runewidth.StringWidth(XAxisLabel(v, w)), "x label %v width %d", v, w)
			assert.Equal(t, w, runewidth.StringWidth(YAxisLabel(v, w)), "y label %v width %d", v, w)
		}
	}
}
