package estimator

import "math"

// CurvePoint is the estimate at one thickness slider stop.
type CurvePoint struct {
	ThicknessIn float64 `json:"thickness_in"`
	Result
}

// SliderStops lists every thickness the slider can take, from SliderMin to
// SliderMax in SliderStep increments.
func SliderStops() []float64 {
	n := int(math.Round((SliderMax-SliderMin)/SliderStep)) + 1
	stops := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, SliderMin+float64(i)*SliderStep)
	}
	return stops
}

// SnapToSlider clamps v into the slider range and rounds it to the nearest step.
// Non-finite values snap to DefaultThickness.
func SnapToSlider(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultThickness
	}
	v = math.Max(SliderMin, math.Min(SliderMax, v))
	return SliderMin + math.Round((v-SliderMin)/SliderStep)*SliderStep
}

// Curve estimates the area at every slider stop, holding length, width,
// density and price fixed.
func Curve(length, width, density, pricePerTon float64) []CurvePoint {
	stops := SliderStops()
	points := make([]CurvePoint, 0, len(stops))
	for _, t := range stops {
		points = append(points, CurvePoint{
			ThicknessIn: t,
			Result:      Estimate(length, width, t, density, pricePerTon),
		})
	}
	return points
}
