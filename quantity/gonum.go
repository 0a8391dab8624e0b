package quantity

import (
	"fmt"

	gonum "gonum.org/v1/gonum/unit"

	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/unit"
)

// SI returns q as a gonum unit holding the root value. The result is only in SI
// units when the root of q's unit tree is the SI unit for D.
func (q Quantity[D]) SI() *gonum.Unit {
	return gonum.New(q.ValueToRoot(), dimension.Of[D]().Dimensions())
}

// FromSI reads v as a root value and returns it expressed in u. It returns
// ErrDimensionMismatch when v's dimensions are not D.
func FromSI[D dimension.Dimension](v gonum.Uniter, u *unit.Unit[D]) (Quantity[D], error) {
	g := v.Unit()
	enc, err := dimension.FromDimensions(g.Dimensions())
	if err != nil {
		return Quantity[D]{}, fmt.Errorf("%v: %w", err, ErrDimensionMismatch)
	}
	if want := dimension.Of[D](); enc != want {
		return Quantity[D]{}, fmt.Errorf("%v is not %v: %w", enc, want, ErrDimensionMismatch)
	}
	return New(u.ConvertFromRoot(g.Value()), u), nil
}
