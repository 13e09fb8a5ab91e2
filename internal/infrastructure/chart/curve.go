// Package chart renders the thickness curve as an interactive HTML chart.
package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// Series names.
const (
	SeriesTons = "Tons"
	SeriesCost = "Cost"
)

// Options describe the area the curve was computed for.
type Options struct {
	Title    string
	Length   float64
	Width    float64
	Price    float64
	Currency string
}

// RenderCurve writes an HTML page plotting tons (and cost, when priced)
// against every thickness slider stop.
func RenderCurve(w io.Writer, points []estimator.CurvePoint, o Options) error {
	line := NewCurve(points, o)
	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render curve chart: %w", err)
	}
	return nil
}

// NewCurve builds the line chart without rendering it.
func NewCurve(points []estimator.CurvePoint, o Options) *charts.Line {
	title := o.Title
	if title == "" {
		title = "Asphalt by thickness"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%g ft x %g ft", o.Length, o.Width),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Thickness (in)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: SeriesTons}),
	)

	xs := make([]string, 0, len(points))
	tons := make([]opts.LineData, 0, len(points))
	cost := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		xs = append(xs, strconv.FormatFloat(p.ThicknessIn, 'f', -1, 64))
		tons = append(tons, opts.LineData{Value: p.Tons})
		cost = append(cost, opts.LineData{Value: p.Cost})
	}

	line.SetXAxis(xs).AddSeries(SeriesTons, tons)

	if o.Price > 0 {
		name := SeriesCost
		if o.Currency != "" {
			name += " (" + o.Currency + ")"
		}
		line.ExtendYAxis(opts.YAxis{Name: name})
		line.AddSeries(name, cost, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	}

	return line
}
