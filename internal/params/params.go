// Package params turns free-form field text into scoring inputs.
//
// Every numeric field except floatValue and liquidity falls back to a fixed
// default when its text does not parse; the table lives in Fallbacks so the
// leniency policy can be audited in one place.
package params

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/dotcommander/floatscore/internal/scoring"
)

// Field names a form field.
type Field string

const (
	AverageCost  Field = "averageCost"
	CurrentPrice Field = "currentPrice"
	Fee          Field = "fee"
	FloatValue   Field = "floatValue"
	PriceWeight  Field = "priceWeight"
	FloatWeight  Field = "floatWeight"
	Alpha        Field = "alpha"
	Cap          Field = "cap"
	Rarity       Field = "rarity"
	Liquidity    Field = "liquidity"
	Name         Field = "name"
)

// DefaultName is shown for an entry without a name.
const DefaultName = "—"

// Fields lists every field in form order.
func Fields() []Field {
	return []Field{
		Name, AverageCost, CurrentPrice, Fee, FloatValue,
		PriceWeight, FloatWeight, Alpha, Cap, Rarity, Liquidity,
	}
}

// Fallbacks is the value used when a field's text does not parse.
// floatValue and liquidity are deliberately absent.
var Fallbacks = map[Field]float64{
	AverageCost:  0,
	CurrentPrice: 0,
	Fee:          0,
	PriceWeight:  0,
	FloatWeight:  0,
	Alpha:        1,
	Cap:          1,
	Rarity:       1,
}

// LiquidityFallback is the factor used when liquidity is absent or not finite.
const LiquidityFallback = 1.0

// Raw is the unparsed text of each field.
type Raw map[Field]string

// Clone returns a copy of r.
func (r Raw) Clone() Raw {
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Parsed is the result of applying the parsing policy to a Raw.
type Parsed struct {
	Inputs   scoring.Inputs
	Name     string
	FloatRaw string // verbatim floatValue text
}

// Lookup resolves a user-supplied field name, case-insensitively, also
// accepting kebab-case (e.g. "average-cost").
func Lookup(name string) (Field, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	for _, f := range Fields() {
		if strings.ToLower(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// ByName resolves an exact field name.
func ByName(name string) (Field, bool) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Number parses text as a finite number.
func Number(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NumberOr parses text, falling back to def.
func NumberOr(text string, def float64) float64 {
	if v, ok := Number(text); ok {
		return v
	}
	return def
}

// Parse applies the parsing policy to r.
func Parse(r Raw) Parsed {
	in := scoring.Inputs{
		AverageCost:  NumberOr(r[AverageCost], Fallbacks[AverageCost]),
		CurrentPrice: NumberOr(r[CurrentPrice], Fallbacks[CurrentPrice]),
		Fee:          NumberOr(r[Fee], Fallbacks[Fee]),
		PriceWeight:  NumberOr(r[PriceWeight], Fallbacks[PriceWeight]),
		FloatWeight:  NumberOr(r[FloatWeight], Fallbacks[FloatWeight]),
		Alpha:        NumberOr(r[Alpha], Fallbacks[Alpha]),
		Cap:          NumberOr(r[Cap], Fallbacks[Cap]),
		Rarity:       NumberOr(r[Rarity], Fallbacks[Rarity]),
		Liquidity:    NumberOr(r[Liquidity], LiquidityFallback),
		// No fallback: NaN fails the float check in scoring.Validate.
		FloatValue: NumberOr(r[FloatValue], math.NaN()),
	}

	name := strings.TrimSpace(r[Name])
	if name == "" {
		name = DefaultName
	}

	return Parsed{
		Inputs:   in,
		Name:     name,
		FloatRaw: r[FloatValue],
	}
}

// FromText converts decoded file values into Raw. Keys must be exact
// field names; files are checked against a closed schema that only knows
// those.
func FromText(values map[string]string) (Raw, error) {
	raw := make(Raw, len(values))
	for k, v := range values {
		f, ok := ByName(k)
		if !ok {
			return nil, fmt.Errorf("unknown field %q", k)
		}
		raw[f] = v
	}
	return raw, nil
}
