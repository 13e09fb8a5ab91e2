// Package estimator converts paving geometry into hot-mix asphalt tonnage and cost.
//
// The calculation is pure and stateless: the same five inputs always produce
// the same Result. Inputs that are not finite numbers are treated as zero;
// negative inputs are applied as given, since clamping is the job of whoever
// collects the raw values.
package estimator

import (
	"math"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Reference constants for the tonnage formula.
const (
	// DefaultDensity is the compacted hot-mix density in lbs per cubic foot.
	DefaultDensity = 145.0

	// PoundsPerTon is one US short ton.
	PoundsPerTon = 2000.0

	// InchesPerFoot converts the entered thickness to feet.
	InchesPerFoot = valueobject.InchesPerFoot

	// DefaultThickness is a standard compacted residential driveway, in inches.
	DefaultThickness = 3.0

	// SliderMin, SliderMax and SliderStep bound the thickness slider.
	// The estimator itself accepts any thickness.
	SliderMin  = 1.0
	SliderMax  = 10.0
	SliderStep = 0.5
)

// Result is the rounded output shown to the user.
type Result struct {
	// Tons is the required asphalt, rounded to two decimals.
	Tons float64 `json:"tons"`

	// Cost is the estimated cost, rounded to two decimals.
	Cost float64 `json:"cost"`
}

// Breakdown holds the unrounded intermediates of one estimate.
type Breakdown struct {
	CubicFeet  float64 `json:"cubic_feet"`
	WeightLbs  float64 `json:"weight_lbs"`
	WeightTons float64 `json:"weight_tons"`
	RawCost    float64 `json:"raw_cost"`
}

// Input is the normalized snapshot the estimator works on.
type Input struct {
	Slab        valueobject.Slab
	Density     float64
	PricePerTon float64
}

// Estimate computes tonnage and cost for a rectangular area.
//
// Parameters:
//   - length: Length in feet
//   - width: Width in feet
//   - thicknessInches: Compacted depth in inches
//   - densityLbsPerCf: Density in lbs per cubic foot
//   - pricePerTon: Unit price per ton
//
// Returns:
//   - Result: tons and cost, each rounded to two decimals
func Estimate(length, width, thicknessInches, densityLbsPerCf, pricePerTon float64) Result {
	return Input{
		Slab:        valueobject.NewSlab(length, width, thicknessInches),
		Density:     densityLbsPerCf,
		PricePerTon: pricePerTon,
	}.Estimate()
}

// Estimate computes the rounded Result for the input.
func (in Input) Estimate() Result {
	return in.Breakdown().Result()
}

// Breakdown computes the unrounded intermediates for the input.
// Cost is taken from the unrounded weight, never from the rounded tons.
func (in Input) Breakdown() Breakdown {
	slab := valueobject.NewSlab(
		finite(in.Slab.LengthFt),
		finite(in.Slab.WidthFt),
		finite(in.Slab.ThicknessIn),
	)
	density := finite(in.Density)
	price := finite(in.PricePerTon)

	cubicFeet := slab.CubicFeet()
	weightLbs := cubicFeet * density
	weightTons := weightLbs / PoundsPerTon

	return Breakdown{
		CubicFeet:  cubicFeet,
		WeightLbs:  weightLbs,
		WeightTons: weightTons,
		RawCost:    weightTons * price,
	}
}

// Result rounds tons and cost independently. A product that overflowed
// float64 (or multiplied an overflow by zero) is reported as zero.
func (b Breakdown) Result() Result {
	return Result{
		Tons: finite(Round2(b.WeightTons)),
		Cost: finite(Round2(b.RawCost)),
	}
}

// Round2 rounds v to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		// no fractional cents left to round at this magnitude
		return v
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		// normalize -0
		return 0
	}
	return r
}

// finite maps NaN and ±Inf to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
