package unit

import (
	"fmt"
	"slices"

	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/internal/chain"
)

// Converter converts values between two fixed units. It walks the unit tree once, at
// construction, and gives the same results as Unit.Convert.
type Converter struct {
	from  string
	to    string
	chain chain.Chain
}

// NewConverter returns a converter from one unit to another of the same dimension.
// It panics if the units do not share a root.
func NewConverter[D dimension.Dimension](from, to *Unit[D]) *Converter {
	return &Converter{
		from:  from.symbol,
		to:    to.symbol,
		chain: plan(from, to),
	}
}

// ConverterFrom returns a converter from another unit into u.
func (u *Unit[D]) ConverterFrom(from *Unit[D]) *Converter {
	return NewConverter(from, u)
}

// plan records the links Unit.Convert would follow from from to to.
func plan[D dimension.Dimension](from, to *Unit[D]) chain.Chain {
	var c chain.Chain
	for from != to {
		if from.parent == nil {
			mustShareRoot(to, from)
			c.Down = descent(to)
			return c
		}
		c.Up = append(c.Up, from.link())
		from = from.parent
	}
	return c
}

// descent lists the links from to's root down to to.
func descent[D dimension.Dimension](to *Unit[D]) []chain.Step {
	var steps []chain.Step
	for n := to; n.parent != nil; n = n.parent {
		steps = append(steps, n.link())
	}
	slices.Reverse(steps)
	return steps
}

// Convert converts a single value.
func (c *Converter) Convert(value float64) float64 {
	return c.chain.Apply(value)
}

// ConvertAll writes the conversion of every src value into dst, allocating when dst is
// too small, and returns the filled slice. dst may alias src.
func (c *Converter) ConvertAll(dst, src []float64) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = c.chain.Apply(v)
	}
	return dst
}

// Func returns Convert as a plain function.
func (c *Converter) Func() func(float64) float64 {
	return c.Convert
}

// Steps returns the number of parent links the conversion crosses.
func (c *Converter) Steps() int {
	return c.chain.Len()
}

func (c *Converter) String() string {
	return fmt.Sprintf("%s -> %s", c.from, c.to)
}
