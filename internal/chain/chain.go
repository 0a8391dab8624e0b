// Package chain provides the precomputed step sequences behind unit converters.
package chain

// Step is one child-to-parent link of a unit hierarchy.
type Step struct {
	Factor float64
	Offset float64
}

// Up converts a value from the child side of the link to the parent side.
// The explicit conversion keeps the product rounded on its own, so the result is the
// same whether or not the compiler would fuse the multiply and subtract.
func (s Step) Up(v float64) float64 {
	return float64(s.Factor*v) - s.Offset
}

// Down is the inverse of Up.
func (s Step) Down(v float64) float64 {
	return (v + s.Offset) / s.Factor
}

// Chain converts by ascending through Up steps and then descending through Down steps.
// Down is ordered from the root side toward the target.
type Chain struct {
	Up   []Step
	Down []Step
}

// Apply runs every step in order.
func (c Chain) Apply(v float64) float64 {
	for _, s := range c.Up {
		v = s.Up(v)
	}
	for _, s := range c.Down {
		v = s.Down(v)
	}
	return v
}

// Len returns the number of steps.
func (c Chain) Len() int {
	return len(c.Up) + len(c.Down)
}

// IsIdentity reports whether the chain has no steps.
func (c Chain) IsIdentity() bool {
	return c.Len() == 0
}
