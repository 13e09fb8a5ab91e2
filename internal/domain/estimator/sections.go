package estimator

import "github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"

// Section is one rectangle of an irregular paving area.
type Section struct {
	Name string `json:"name" yaml:"name"`

	valueobject.Slab `yaml:",inline"`
}

// SectionResult is the rounded estimate for a single section.
type SectionResult struct {
	Name string `json:"name"`
	valueobject.Slab
	Result

	SquareFeet float64 `json:"square_feet"`
}

// SectionsResult aggregates an area broken into rectangles.
type SectionsResult struct {
	Sections []SectionResult `json:"sections"`
	Total    Result          `json:"total"`

	// Breakdown is the summed, unrounded total.
	Breakdown Breakdown `json:"breakdown"`
}

// EstimateSections estimates every section with the shared density and price.
// The total is rounded from the summed unrounded weights, so it can differ
// by a cent or two from adding the per-section rounded values.
func EstimateSections(sections []Section, density, pricePerTon float64) SectionsResult {
	out := SectionsResult{
		Sections: make([]SectionResult, 0, len(sections)),
	}

	for _, s := range sections {
		b := Input{Slab: s.Slab, Density: density, PricePerTon: pricePerTon}.Breakdown()

		out.Breakdown.CubicFeet += b.CubicFeet
		out.Breakdown.WeightLbs += b.WeightLbs
		out.Breakdown.WeightTons += b.WeightTons
		out.Breakdown.RawCost += b.RawCost

		out.Sections = append(out.Sections, SectionResult{
			Name:       s.Name,
			Slab:       s.Slab,
			Result:     b.Result(),
			SquareFeet: finite(s.SquareFeet()),
		})
	}

	out.Total = out.Breakdown.Result()
	return out
}
