package estimator

// Waste allowances recommended on top of the computed tonnage to cover
// spillage and subgrade variation.
const (
	WasteLowPct  = 5.0
	WasteHighPct = 10.0
)

// Recommendation is the suggested order range including waste.
type Recommendation struct {
	LowPct  float64 `json:"low_pct"`
	HighPct float64 `json:"high_pct"`
	Low     Result  `json:"low"`
	High    Result  `json:"high"`
}

// WithWaste scales the unrounded weight and cost by (1 + pct/100), then rounds.
func (b Breakdown) WithWaste(pct float64) Result {
	factor := 1 + finite(pct)/100
	return Breakdown{
		CubicFeet:  b.CubicFeet * factor,
		WeightLbs:  b.WeightLbs * factor,
		WeightTons: b.WeightTons * factor,
		RawCost:    b.RawCost * factor,
	}.Result()
}

// Recommend returns the order range between lowPct and highPct waste.
func (b Breakdown) Recommend(lowPct, highPct float64) Recommendation {
	if highPct < lowPct {
		lowPct, highPct = highPct, lowPct
	}
	return Recommendation{
		LowPct:  lowPct,
		HighPct: highPct,
		Low:     b.WithWaste(lowPct),
		High:    b.WithWaste(highPct),
	}
}
