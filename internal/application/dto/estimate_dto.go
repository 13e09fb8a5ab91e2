package dto

import (
	"bytes"
	"encoding/json"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/form"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/domain/estimator"
)

// Number is the raw text of a numeric field.
// It decodes from a JSON number, string or null; any other JSON value
// decodes as blank. Conversion follows form.ParseNumber, so it never fails.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*n = ""
		return nil
	}

	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*n = Number(b)
	default:
		// null, true, false, objects and arrays
		*n = ""
	}
	return nil
}

// Float returns the coerced value.
func (n Number) Float() float64 {
	return form.ParseNumber(string(n))
}

// optionalNumber returns nil for a key that was left out, and the coerced
// Number otherwise. An explicit null is present and blank.
func optionalNumber(raw json.RawMessage) (*Number, error) {
	if raw == nil {
		return nil, nil
	}
	var n Number
	if err := n.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return &n, nil
}

// EstimateRequest is the payload of a single-area estimate.
// Thickness left out entirely falls back to the configured default;
// null or blank is zero like any other field.
type EstimateRequest struct {
	Length    Number  `json:"length"`
	Width     Number  `json:"width"`
	Thickness *Number `json:"thickness,omitempty"`
	Price     Number  `json:"price"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EstimateRequest) UnmarshalJSON(b []byte) error {
	type plain EstimateRequest
	var aux struct {
		plain
		Thickness json.RawMessage `json:"thickness"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	thickness, err := optionalNumber(aux.Thickness)
	if err != nil {
		return err
	}
	*r = EstimateRequest(aux.plain)
	r.Thickness = thickness
	return nil
}

// InputEcho shows the numbers the estimate was computed from.
type InputEcho struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
	Price     float64 `json:"price"`
	Density   float64 `json:"density"`
}

// DisplayResponse is the formatted output panel.
type DisplayResponse struct {
	Tons     string `json:"tons"`
	Cost     string `json:"cost"`
	ShowCost bool   `json:"show_cost"`
}

// EstimateResponse is the result of a single-area estimate.
type EstimateResponse struct {
	Input          InputEcho                `json:"input"`
	Result         estimator.Result         `json:"result"`
	Breakdown      estimator.Breakdown      `json:"breakdown"`
	Recommendation estimator.Recommendation `json:"recommendation"`
	Display        *DisplayResponse         `json:"display,omitempty"`
}

// SectionRequest is one rectangle of a sections request.
type SectionRequest struct {
	Name      string  `json:"name"`
	Length    Number  `json:"length"`
	Width     Number  `json:"width"`
	Thickness *Number `json:"thickness,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SectionRequest) UnmarshalJSON(b []byte) error {
	type plain SectionRequest
	var aux struct {
		plain
		Thickness json.RawMessage `json:"thickness"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	thickness, err := optionalNumber(aux.Thickness)
	if err != nil {
		return err
	}
	*r = SectionRequest(aux.plain)
	r.Thickness = thickness
	return nil
}

// SectionsRequest is the payload of an irregular-area estimate.
type SectionsRequest struct {
	Sections []SectionRequest `json:"sections"`
	Price    Number           `json:"price"`
}

// SectionsResponse is the result of an irregular-area estimate.
type SectionsResponse struct {
	Sections       []estimator.SectionResult `json:"sections"`
	Total          estimator.Result          `json:"total"`
	Breakdown      estimator.Breakdown       `json:"breakdown"`
	Recommendation estimator.Recommendation  `json:"recommendation"`
	Density        float64                   `json:"density"`
	Price          float64                   `json:"price"`
	Display        *DisplayResponse          `json:"display,omitempty"`
}

// CurveRequest fixes everything but thickness.
type CurveRequest struct {
	Length Number `json:"length"`
	Width  Number `json:"width"`
	Price  Number `json:"price"`
}

// CurveResponse lists the estimate at every thickness slider stop.
type CurveResponse struct {
	Length  float64                `json:"length"`
	Width   float64                `json:"width"`
	Price   float64                `json:"price"`
	Density float64                `json:"density"`
	Points  []estimator.CurvePoint `json:"points"`
}
