package view

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// SectionsTable renders one row per section followed by the total.
func (f Formatter) SectionsTable(sections []estimator.SectionResult, total estimator.Result) string {
	showCost := total.Cost > 0

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	header := "Section\tLength (ft)\tWidth (ft)\tThickness (in)\tTons\t"
	if showCost {
		header += "Cost\t"
	}
	fmt.Fprintln(tw, header)

	for _, s := range sections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t", s.Name,
			FormatTons(s.LengthFt), FormatTons(s.WidthFt), FormatTons(s.ThicknessIn), FormatTons(s.Tons))
		if showCost {
			fmt.Fprintf(tw, "%s\t", f.Cost(s.Cost))
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "Total\t\t\t\t%s\t", FormatTons(total.Tons))
	if showCost {
		fmt.Fprintf(tw, "%s\t", f.Cost(total.Cost))
	}
	fmt.Fprintln(tw)

	_ = tw.Flush()
	return sb.String()
}
