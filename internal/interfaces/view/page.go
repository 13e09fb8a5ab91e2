package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

//go:embed templates/*.html.tmpl
var templates embed.FS

// PageData is the model of the calculator page.
type PageData struct {
	Title string

	// Raw field text, echoed back into the inputs.
	Length    string
	Width     string
	Thickness string
	Price     string

	SliderValue float64
	SliderMin   float64
	SliderMax   float64
	SliderStep  float64

	Density  float64
	Locale   string
	Currency string

	Panel          Panel
	Recommendation string
}

// Page renders the calculator page.
type Page struct {
	tmpl *template.Template
	f    Formatter
}

// NewPage parses the embedded page template.
func NewPage(f Formatter) (*Page, error) {
	tmpl, err := template.ParseFS(templates, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Page{tmpl: tmpl, f: f}, nil
}

// Data builds the page model from a filled-in form. The waste range is shown
// once there is tonnage to order.
func (p *Page) Data(title string, fm *form.Form, wasteLowPct, wasteHighPct float64) PageData {
	values := fm.Values()
	b := fm.Breakdown()

	data := PageData{
		Title:       title,
		Length:      fm.Raw(form.FieldLength),
		Width:       fm.Raw(form.FieldWidth),
		Thickness:   fm.Raw(form.FieldThickness),
		Price:       fm.Raw(form.FieldPrice),
		SliderValue: estimator.SnapToSlider(values.Thickness),
		SliderMin:   estimator.SliderMin,
		SliderMax:   estimator.SliderMax,
		SliderStep:  estimator.SliderStep,
		Density:     values.Density,
		Locale:      p.f.Locale(),
		Currency:    string(p.f.Currency()),
		Panel:       p.f.Panel(fm.Result()),
	}
	if fm.Result().Tons > 0 {
		rec := b.Recommend(wasteLowPct, wasteHighPct)
		data.Recommendation = p.f.Recommendation(rec)
	}
	return data
}

// Render writes the page to w.
func (p *Page) Render(w io.Writer, data PageData) error {
	return p.tmpl.Execute(w, data)
}
