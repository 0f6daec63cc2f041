package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// jsonFloat encodes finite values as JSON numbers and NaN/±Inf as the
// strings "NaN", "+Inf" and "-Inf".
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(x, 'g', -1, 64))), nil
	}
	return json.Marshal(x)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", s, err)
		}
		*f = jsonFloat(x)
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*f = jsonFloat(x)
	return nil
}

type resultJSON struct {
	AdjustedCost    jsonFloat `json:"adjusted_cost"`
	Discount        jsonFloat `json:"discount"`
	ClampedDiscount jsonFloat `json:"clamped_discount"`
	FloatQuality    jsonFloat `json:"float_quality"`
	RawScore        jsonFloat `json:"raw_score"`
	LiquidityFactor jsonFloat `json:"liquidity_factor"`
	FinalScore      jsonFloat `json:"final_score"`
}

// MarshalJSON keeps results with overflowed terms encodable.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		AdjustedCost:    jsonFloat(r.AdjustedCost),
		Discount:        jsonFloat(r.Discount),
		ClampedDiscount: jsonFloat(r.ClampedDiscount),
		FloatQuality:    jsonFloat(r.FloatQuality),
		RawScore:        jsonFloat(r.RawScore),
		LiquidityFactor: jsonFloat(r.LiquidityFactor),
		FinalScore:      jsonFloat(r.FinalScore),
	})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var v resultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Result{
		AdjustedCost:    float64(v.AdjustedCost),
		Discount:        float64(v.Discount),
		ClampedDiscount: float64(v.ClampedDiscount),
		FloatQuality:    float64(v.FloatQuality),
		RawScore:        float64(v.RawScore),
		LiquidityFactor: float64(v.LiquidityFactor),
		FinalScore:      float64(v.FinalScore),
	}
	return nil
}
