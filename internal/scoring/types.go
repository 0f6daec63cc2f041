package scoring

import "math"

// Inputs is the parameter set for a single advantage score.
type Inputs struct {
	AverageCost  float64 `json:"average_cost"`  // Pm, must be > 0
	CurrentPrice float64 `json:"current_price"` // Pa
	Fee          float64 `json:"fee"`           // added to CurrentPrice
	FloatValue   float64 `json:"float_value"`   // wear, 0 pristine .. 1 worn
	PriceWeight  float64 `json:"price_weight"`  // wp
	FloatWeight  float64 `json:"float_weight"`  // wf, wp+wf must be > 0
	Alpha        float64 `json:"alpha"`         // float sensitivity exponent
	Cap          float64 `json:"cap"`           // clamp bound on discount
	Rarity       float64 `json:"rarity"`        // rarity multiplier
	Liquidity    float64 `json:"liquidity"`     // [0,1]; non-finite means "not provided"
}

// Result holds every derived quantity of a computed score.
type Result struct {
	AdjustedCost    float64 `json:"adjusted_cost"`
	Discount        float64 `json:"discount"`
	ClampedDiscount float64 `json:"clamped_discount"`
	FloatQuality    float64 `json:"float_quality"`
	RawScore        float64 `json:"raw_score"`
	LiquidityFactor float64 `json:"liquidity_factor"`
	FinalScore      float64 `json:"final_score"`
}

// Label is a qualitative interpretation of a final score.
// Values are ordered from worst to best.
type Label int

const (
	LabelAvoid Label = iota
	LabelNeutral
	LabelConsider
	LabelStrongBuy
)

// Interpretation thresholds. StrongBuy and Consider are exclusive lower
// bounds, Neutral is inclusive.
const (
	StrongBuyAbove = 0.40
	ConsiderAbove  = 0.15
	NeutralFrom    = -0.15
)

// String returns the display text of the label.
func (l Label) String() string {
	switch l {
	case LabelStrongBuy:
		return "Strong buy"
	case LabelConsider:
		return "Consider"
	case LabelNeutral:
		return "Neutral"
	default:
		return "Avoid"
	}
}

// Interpret maps a final score to its label. NaN maps to LabelAvoid.
func Interpret(score float64) Label {
	switch {
	case score > StrongBuyAbove:
		return LabelStrongBuy
	case score > ConsiderAbove:
		return LabelConsider
	case score >= NeutralFrom:
		return LabelNeutral
	default:
		return LabelAvoid
	}
}

// Labels returns all labels from best to worst.
func Labels() []Label {
	return []Label{LabelStrongBuy, LabelConsider, LabelNeutral, LabelAvoid}
}

// NotProvided is the Liquidity value meaning "no liquidity given".
var NotProvided = math.NaN()
