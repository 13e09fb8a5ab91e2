// Package view formats estimates for display.
package view

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Output panel labels.
const (
	TonsLabel = "Required Asphalt"
	CostLabel = "Estimated Cost"
)

// Panel is the presentation model of the output panel.
type Panel struct {
	TonsLabel string
	Tons      string
	CostLabel string
	Cost      string

	// ShowCost is false until a positive cost is available.
	ShowCost bool
}

// Formatter renders numbers for one locale and currency.
type Formatter struct {
	tag      language.Tag
	currency valueobject.Currency
}

// NewFormatter creates a Formatter. An unparseable locale falls back to en-US.
func NewFormatter(locale string, currency valueobject.Currency) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return Formatter{tag: tag, currency: currency}
}

// DefaultFormatter formats US dollars the en-US way.
func DefaultFormatter() Formatter {
	return Formatter{tag: language.AmericanEnglish, currency: valueobject.CurrencyUSD}
}

// FormatTons prints tons in shortest form, e.g. "18.13", "25", "0".
func FormatTons(tons float64) string {
	return strconv.FormatFloat(tons, 'f', -1, 64)
}

// Cost formats an amount as currency with locale grouping, e.g. "$1,450.5".
func (f Formatter) Cost(amount float64) string {
	return valueobject.FormatAmount(amount, f.currency, f.tag)
}

// Panel builds the output panel for result.
func (f Formatter) Panel(result estimator.Result) Panel {
	return Panel{
		TonsLabel: TonsLabel,
		Tons:      FormatTons(result.Tons) + " Tons",
		CostLabel: CostLabel,
		Cost:      f.Cost(result.Cost),
		ShowCost:  result.Cost > 0,
	}
}

// Locale returns the BCP 47 tag of the formatter.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns the formatter currency.
func (f Formatter) Currency() valueobject.Currency {
	return f.currency
}
