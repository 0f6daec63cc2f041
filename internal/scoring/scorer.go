package scoring

import "math"

// Validate checks the preconditions of Compute in order and returns the
// first failure.
func Validate(in Inputs) error {
	if !(in.FloatValue >= 0 && in.FloatValue <= 1) {
		return newValidationError(InvalidFloat, in.FloatValue, ErrInvalidFloat)
	}
	if !(in.AverageCost > 0) {
		return newValidationError(InvalidAverageCost, in.AverageCost, ErrInvalidAverageCost)
	}
	if !(in.PriceWeight+in.FloatWeight > 0) {
		return newValidationError(InvalidWeights, in.PriceWeight+in.FloatWeight, ErrInvalidWeights)
	}
	return nil
}

// Compute scores in. It never panics on bad input; a violated precondition
// is returned as a *ValidationError.
func Compute(in Inputs) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	adjusted := in.CurrentPrice + in.Fee
	discount := (in.AverageCost - adjusted) / in.AverageCost
	clamped := Clamp(discount, -in.Cap, in.Cap)
	quality := math.Pow(1-in.FloatValue, in.Alpha)
	raw := (in.PriceWeight*clamped + in.FloatWeight*quality) / (in.PriceWeight + in.FloatWeight)
	liquidity := LiquidityFactor(in.Liquidity)

	return Result{
		AdjustedCost:    adjusted,
		Discount:        discount,
		ClampedDiscount: clamped,
		FloatQuality:    quality,
		RawScore:        raw,
		LiquidityFactor: liquidity,
		FinalScore:      raw * in.Rarity * liquidity,
	}, nil
}
