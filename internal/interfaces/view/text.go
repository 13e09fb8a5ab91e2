package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// TextRenderer writes the output panel as plain text.
// It implements port.Renderer.
type TextRenderer struct {
	w io.Writer
	f Formatter
}

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer, f Formatter) *TextRenderer {
	return &TextRenderer{w: w, f: f}
}

// Render writes the panel for result. Write errors are ignored, as with fmt.Print.
func (r *TextRenderer) Render(result estimator.Result) {
	_, _ = io.WriteString(r.w, r.f.Text(result))
}

// Text renders the panel for result as lines of "label: value".
func (f Formatter) Text(result estimator.Result) string {
	p := f.Panel(result)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", p.TonsLabel, p.Tons)
	if p.ShowCost {
		fmt.Fprintf(&sb, "%s: %s\n", p.CostLabel, p.Cost)
	}
	return sb.String()
}

// Recommendation renders the waste range as one line.
func (f Formatter) Recommendation(rec estimator.Recommendation) string {
	line := fmt.Sprintf("Order %s to %s Tons (%s%% to %s%% waste)",
		FormatTons(rec.Low.Tons), FormatTons(rec.High.Tons),
		FormatTons(rec.LowPct), FormatTons(rec.HighPct),
	)
	if rec.Low.Cost > 0 {
		line += fmt.Sprintf(", %s to %s", f.Cost(rec.Low.Cost), f.Cost(rec.High.Cost))
	}
	return line + "\n"
}
