// Package form implements the input collector: it holds the raw text of each
// field, normalizes it to numbers, recomputes the estimate synchronously on
// every change and publishes the result to its renderers.
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/valueobject"
)

// Form errors.
var (
	ErrUnknownField = errors.New("unknown field")
)

// Field identifies a user-editable input.
type Field string

const (
	FieldLength    Field = "length"    // feet
	FieldWidth     Field = "width"     // feet
	FieldThickness Field = "thickness" // inches
	FieldPrice     Field = "price"     // per ton
)

// Fields lists the editable fields in display order.
func Fields() []Field {
	return []Field{FieldLength, FieldWidth, FieldThickness, FieldPrice}
}

// ParseField resolves a field name, case-insensitively.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FieldLength, FieldWidth, FieldThickness, FieldPrice:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ParseNumber converts raw field text to a non-negative number.
// Blank, non-numeric, NaN, infinite and negative input all become 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Values is the normalized snapshot of the form.
type Values struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
	Price     float64 `json:"price"`
	Density   float64 `json:"density"`
}

// Input converts the snapshot to estimator input.
func (v Values) Input() estimator.Input {
	return estimator.Input{
		Slab:        valueobject.NewSlab(v.Length, v.Width, v.Thickness),
		Density:     v.Density,
		PricePerTon: v.Price,
	}
}

// Option configures a Form.
type Option func(*Form)

// WithDensity sets the density constant. Non-positive values are ignored.
func WithDensity(density float64) Option {
	return func(f *Form) {
		if density > 0 && !math.IsInf(density, 0) {
			f.density = density
		}
	}
}

// WithDefaultThickness sets the thickness the form starts and resets with.
func WithDefaultThickness(inches float64) Option {
	return func(f *Form) {
		f.defaults[FieldThickness] = strconv.FormatFloat(estimator.SnapToSlider(inches), 'f', -1, 64)
	}
}

type subscriber struct {
	id int
	r  port.Renderer
}

// Form is the input collector.
//
// A Form is not safe for concurrent use; it models a single user editing
// one set of fields.
type Form struct {
	density  float64
	defaults map[Field]string
	raw      map[Field]string

	values    Values
	breakdown estimator.Breakdown
	result    estimator.Result

	subs   []subscriber
	nextID int
}

// New creates a Form with its defaults applied and computed.
func New(opts ...Option) *Form {
	f := &Form{
		density: estimator.DefaultDensity,
		defaults: map[Field]string{
			FieldThickness: strconv.FormatFloat(estimator.DefaultThickness, 'f', -1, 64),
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.raw = f.defaultRaw()
	f.recompute()
	return f
}

func (f *Form) defaultRaw() map[Field]string {
	raw := make(map[Field]string, len(Fields()))
	for _, field := range Fields() {
		raw[field] = f.defaults[field]
	}
	return raw
}

// Set stores the raw text of a field, recomputes and publishes.
//
// Returns:
//   - error: ErrUnknownField if field is not one of Fields()
func (f *Form) Set(field Field, raw string) error {
	if _, ok := f.raw[field]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	f.raw[field] = raw
	f.update()
	return nil
}

// SetThicknessSlider moves the thickness slider. The position is clamped to
// the slider range and snapped to the nearest step.
func (f *Form) SetThicknessSlider(pos float64) {
	f.raw[FieldThickness] = strconv.FormatFloat(estimator.SnapToSlider(pos), 'f', -1, 64)
	f.update()
}

// Reset restores every field to its default and publishes.
func (f *Form) Reset() {
	f.raw = f.defaultRaw()
	f.update()
}

// Subscribe registers r and renders the current result to it immediately.
// The returned function removes the subscription.
func (f *Form) Subscribe(r port.Renderer) (unsubscribe func()) {
	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, subscriber{id: id, r: r})
	r.Render(f.result)

	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Raw returns the text last entered for field.
func (f *Form) Raw(field Field) string {
	return f.raw[field]
}

// Values returns the normalized snapshot.
func (f *Form) Values() Values {
	return f.values
}

// Result returns the latest rounded result.
func (f *Form) Result() estimator.Result {
	return f.result
}

// Breakdown returns the unrounded intermediates of the latest result.
func (f *Form) Breakdown() estimator.Breakdown {
	return f.breakdown
}

func (f *Form) update() {
	f.recompute()
	f.publish()
}

func (f *Form) recompute() {
	f.values = Values{
		Length:    ParseNumber(f.raw[FieldLength]),
		Width:     ParseNumber(f.raw[FieldWidth]),
		Thickness: ParseNumber(f.raw[FieldThickness]),
		Price:     ParseNumber(f.raw[FieldPrice]),
		Density:   f.density,
	}
	f.breakdown = f.values.Input().Breakdown()
	f.result = f.breakdown.Result()
}

func (f *Form) publish() {
	subs := make([]subscriber, len(f.subs))
	copy(subs, f.subs)
	for _, s := range subs {
		s.r.Render(f.result)
	}
}
