package scoring

import "math"

// Clamp saturates x to [lo, hi]. lo <= hi is assumed.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// LiquidityFactor clamps a finite liquidity to [0,1]; anything non-finite
// counts as fully liquid.
func LiquidityFactor(l float64) float64 {
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 1
	}
	return Clamp(l, 0, 1)
}
