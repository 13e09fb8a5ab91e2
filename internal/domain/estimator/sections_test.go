package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

func TestEstimateSections(t *testing.T) {
	sections := []Section{
		{Name: "driveway", Slab: valueobject.NewSlab(50, 20, 3)},
		{Name: "apron", Slab: valueobject.NewSlab(10, 10, 3)},
	}

	got := EstimateSections(sections, DefaultDensity, 80)

	require.Len(t, got.Sections, 2)
	assert.Equal(t, "driveway", got.Sections[0].Name)
	assert.Equal(t, 18.13, got.Sections[0].Tons)
	assert.Equal(t, 1000.0, got.Sections[0].SquareFeet)
	assert.Equal(t, "apron", got.Sections[1].Name)
	assert.Equal(t, 1.81, got.Sections[1].Tons)
	assert.Equal(t, 145.0, got.Sections[1].Cost)

	assert.Equal(t, 19.9375, got.Breakdown.WeightTons)
	assert.Equal(t, 19.94, got.Total.Tons)
	assert.Equal(t, 1595.0, got.Total.Cost)
}

func TestEstimateSections_TotalRoundsFromUnroundedSum(t *testing.T) {
	// each section is 0.004 tons, which rounds to zero on its own
	s := Section{Slab: valueobject.NewSlab(1, 1, 12*2000*0.004/145)}
	got := EstimateSections([]Section{s, s, s}, DefaultDensity, 0)

	for _, sec := range got.Sections {
		assert.Equal(t, 0.0, sec.Tons)
	}
	assert.Equal(t, 0.01, got.Total.Tons)
}

func TestEstimateSections_Empty(t *testing.T) {
	got := EstimateSections(nil, DefaultDensity, 80)
	assert.Empty(t, got.Sections)
	assert.NotNil(t, got.Sections)
	assert.Equal(t, Result{}, got.Total)
}

func TestBreakdown_Recommend(t *testing.T) {
	b := Input{Slab: valueobject.NewSlab(50, 20, 3), Density: DefaultDensity, PricePerTon: 80}.Breakdown()

	rec := b.Recommend(WasteLowPct, WasteHighPct)
	assert.Equal(t, 5.0, rec.LowPct)
	assert.Equal(t, 10.0, rec.HighPct)
	assert.Equal(t, 19.03, rec.Low.Tons)
	assert.InDelta(t, 1522.5, rec.Low.Cost, 1e-9)
	assert.Equal(t, 19.94, rec.High.Tons)
	assert.InDelta(t, 1595.0, rec.High.Cost, 1e-9)

	swapped := b.Recommend(WasteHighPct, WasteLowPct)
	assert.Equal(t, rec, swapped)

	assert.Equal(t, b.Result(), b.WithWaste(0))
}

func TestSliderStops(t *testing.T) {
	stops := SliderStops()
	require.Len(t, stops, 19)
	assert.Equal(t, SliderMin, stops[0])
	assert.Equal(t, SliderMax, stops[len(stops)-1])
	assert.Equal(t, 3.0, stops[4])
}

func TestSnapToSlider(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-3, 1},
		{12, 10},
		{4.2, 4},
		{4.3, 4.5},
		{4.25, 4.5},
		{3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapToSlider(tt.in), "SnapToSlider(%v)", tt.in)
	}
}

func TestCurve(t *testing.T) {
	points := Curve(50, 20, DefaultDensity, 80)
	require.Len(t, points, len(SliderStops()))

	for i, p := range points {
		assert.Equal(t, Estimate(50, 20, p.ThicknessIn, DefaultDensity, 80), p.Result)
		if i > 0 {
			assert.Greater(t, p.Tons, points[i-1].Tons)
		}
	}
	assert.Equal(t, 18.13, points[4].Tons)
}
