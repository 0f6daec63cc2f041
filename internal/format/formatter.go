package format

import (
	"math"
	"strconv"
)

// Default is the number of decimals used when none is configured.
const Default = 3

// Placeholder is rendered in place of NaN and infinities.
const Placeholder = "--"

// Number renders x with a fixed number of decimals. Negative decimals are
// treated as zero.
func Number(x float64, decimals int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(x, 'f', decimals, 64)
}

// Numbers is Number bound to a decimals setting.
type Numbers struct {
	Decimals int
}

// NewNumbers creates a Numbers formatter.
func NewNumbers(decimals int) Numbers {
	return Numbers{Decimals: decimals}
}

// Format renders x using the configured decimals.
func (n Numbers) Format(x float64) string {
	return Number(x, n.Decimals)
}

// Percent renders a fraction as a percentage, e.g. 0.2 -> "20.0%".
func (n Numbers) Percent(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Placeholder
	}
	d := n.Decimals - 2
	if d < 0 {
		d = 0
	}
	return strconv.FormatFloat(x*100, 'f', d, 64) + "%"
}
