package view

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// CurveTable renders one row per thickness stop. The cost column is left
// out when no stop has a cost.
func (f Formatter) CurveTable(points []estimator.CurvePoint) string {
	showCost := false
	for _, p := range points {
		if p.Cost > 0 {
			showCost = true
			break
		}
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	if showCost {
		fmt.Fprintln(tw, "Thickness (in)\tTons\tCost\t")
	} else {
		fmt.Fprintln(tw, "Thickness (in)\tTons\t")
	}
	for _, p := range points {
		if showCost {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", FormatTons(p.ThicknessIn), FormatTons(p.Tons), f.Cost(p.Cost))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t\n", FormatTons(p.ThicknessIn), FormatTons(p.Tons))
		}
	}
	_ = tw.Flush()
	return sb.String()
}
