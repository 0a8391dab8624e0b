package quantity

import "math"

// Tolerance configures approximate comparison with Quantity.Nearly.
// Root values a and b are nearly equal when |a-b| <= Absolute, or when
// |a-b| / max(|a|, |b|) <= Relative.
type Tolerance struct {
	// Absolute is the accepted difference between root values.
	// Default: 1e-12
	Absolute float64

	// Relative is the accepted difference relative to the larger root value.
	// Default: 1e-9
	Relative float64
}

// DefaultTolerance returns tolerances suited to conversions between unit systems,
// e.g. inches and centimeters.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Absolute: 1e-12,
		Relative: 1e-9,
	}
}

// validate replaces negative or NaN tolerances with the defaults.
func (t *Tolerance) validate() {
	def := DefaultTolerance()
	if t.Absolute < 0 || math.IsNaN(t.Absolute) {
		t.Absolute = def.Absolute
	}
	if t.Relative < 0 || math.IsNaN(t.Relative) {
		t.Relative = def.Relative
	}
}
