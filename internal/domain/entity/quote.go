// Package entity contains the core business entities of the domain layer.
package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Quote errors define domain-specific error conditions for quotes.
var (
	ErrInvalidDensity = errors.New("quote density must be positive")
	ErrNoSections     = errors.New("quote has no sections")
)

// UntitledProject names a quote created without a project name.
const UntitledProject = "Untitled"

// Quote is a named, timestamped snapshot of one estimate, ready for export.
// It is never stored; every export builds a fresh one.
type Quote struct {
	// ID is the unique identifier for the quote
	ID uuid.UUID `json:"id"`

	// Project is a free-form label for the job
	Project string `json:"project"`

	// Slab is the paved area; zero when the quote covers several sections
	Slab valueobject.Slab `json:"slab"`

	// Sections holds the per-rectangle estimates of an irregular area
	Sections []estimator.SectionResult `json:"sections,omitempty"`

	// Density in lbs per cubic foot
	Density float64 `json:"density"`

	// PricePerTon is the unit price
	PricePerTon valueobject.Money `json:"price_per_ton"`

	// Breakdown holds the unrounded intermediates
	Breakdown estimator.Breakdown `json:"breakdown"`

	// Result is the rounded tons and cost
	Result estimator.Result `json:"result"`

	// Cost is Result.Cost as money
	Cost valueobject.Money `json:"cost"`

	// Recommendation is the order range including waste
	Recommendation estimator.Recommendation `json:"recommendation"`

	// CreatedAt is the timestamp when the quote was created
	CreatedAt time.Time `json:"created_at"`

	wasteLowPct, wasteHighPct float64
}

// QuoteOption customizes a quote under construction.
type QuoteOption func(*Quote)

// WithWaste sets the waste range of the order recommendation.
// Without it a quote uses estimator.WasteLowPct and estimator.WasteHighPct.
func WithWaste(lowPct, highPct float64) QuoteOption {
	return func(q *Quote) {
		q.wasteLowPct, q.wasteHighPct = lowPct, highPct
	}
}

// NewQuote creates a quote for a single rectangular area.
//
// Parameters:
//   - project: Project label (blank becomes UntitledProject)
//   - in: Estimator input snapshot
//   - currency: Currency of the unit price
//   - opts: e.g. WithWaste
//
// Returns:
//   - *Quote: newly created quote
//   - error: ErrInvalidDensity if density is not positive
func NewQuote(project string, in estimator.Input, currency valueobject.Currency, opts ...QuoteOption) (*Quote, error) {
	if !(in.Density > 0) {
		return nil, ErrInvalidDensity
	}

	q := newQuote(project, in.Density, in.PricePerTon, currency, opts)
	q.Slab = in.Slab
	q.setBreakdown(in.Breakdown())
	return q, nil
}

// NewSectionsQuote creates a quote for an area broken into rectangles.
//
// Returns:
//   - *Quote: newly created quote
//   - error: ErrInvalidDensity or ErrNoSections
func NewSectionsQuote(
	project string,
	sections []estimator.Section,
	density, pricePerTon float64,
	currency valueobject.Currency,
	opts ...QuoteOption,
) (*Quote, error) {
	if !(density > 0) {
		return nil, ErrInvalidDensity
	}
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	res := estimator.EstimateSections(sections, density, pricePerTon)

	q := newQuote(project, density, pricePerTon, currency, opts)
	q.Sections = res.Sections
	q.setBreakdown(res.Breakdown)
	return q, nil
}

func newQuote(project string, density, pricePerTon float64, currency valueobject.Currency, opts []QuoteOption) *Quote {
	project = strings.TrimSpace(project)
	if project == "" {
		project = UntitledProject
	}
	q := &Quote{
		ID:           uuid.New(),
		Project:      project,
		Density:      density,
		PricePerTon:  valueobject.NewMoneyFromFloat(pricePerTon, currency),
		CreatedAt:    time.Now().UTC(),
		wasteLowPct:  estimator.WasteLowPct,
		wasteHighPct: estimator.WasteHighPct,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Quote) setBreakdown(b estimator.Breakdown) {
	q.Breakdown = b
	q.Result = b.Result()
	q.Cost = valueobject.NewMoneyFromFloat(q.Result.Cost, q.PricePerTon.Currency)
	q.Recommendation = b.Recommend(q.wasteLowPct, q.wasteHighPct)
}

// IsMultiSection reports whether the quote was built from sections.
func (q *Quote) IsMultiSection() bool {
	return len(q.Sections) > 0
}

// HasCost reports whether a price was entered, i.e. the cost line is shown.
func (q *Quote) HasCost() bool {
	return q.Cost.IsPositive()
}
