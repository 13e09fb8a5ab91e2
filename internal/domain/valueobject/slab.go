// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import "fmt"

// InchesPerFoot converts a paving depth entered in inches to feet.
const InchesPerFoot = 12.0

// Slab represents the rectangular paving area and its compacted depth.
// Plan dimensions are in feet, depth in inches.
type Slab struct {
	// LengthFt is the length of the area in feet.
	LengthFt float64 `json:"length_ft" yaml:"length"`

	// WidthFt is the width of the area in feet.
	WidthFt float64 `json:"width_ft" yaml:"width"`

	// ThicknessIn is the compacted depth in inches.
	ThicknessIn float64 `json:"thickness_in" yaml:"thickness"`
}

// NewSlab creates a new Slab value object.
//
// Parameters:
//   - lengthFt: Length in feet
//   - widthFt: Width in feet
//   - thicknessIn: Compacted depth in inches
//
// Returns:
//   - Slab: new Slab value object
func NewSlab(lengthFt, widthFt, thicknessIn float64) Slab {
	return Slab{
		LengthFt:    lengthFt,
		WidthFt:     widthFt,
		ThicknessIn: thicknessIn,
	}
}

// SquareFeet returns the plan area.
func (s Slab) SquareFeet() float64 {
	return s.LengthFt * s.WidthFt
}

// CubicFeet calculates the compacted volume in cubic feet.
// The multiplication order is length, width, then depth in feet.
//
// Returns:
//   - float64: volume in ft³
func (s Slab) CubicFeet() float64 {
	return s.LengthFt * s.WidthFt * (s.ThicknessIn / InchesPerFoot)
}

// IsEmpty reports whether any dimension is zero, i.e. there is nothing to pave.
func (s Slab) IsEmpty() bool {
	return s.LengthFt == 0 || s.WidthFt == 0 || s.ThicknessIn == 0
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted slab (e.g., "50.0ft x 20.0ft x 3.0in")
func (s Slab) String() string {
	return fmt.Sprintf("%.1fft x %.1fft x %.1fin", s.LengthFt, s.WidthFt, s.ThicknessIn)
}
