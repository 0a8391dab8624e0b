package quantity

import (
	"fmt"

	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/unit"
)

// Mul returns q × that expressed in u, whose dimension R must be the product of D and
// S. It returns ErrDimensionMismatch when it is not, and ErrAffineUnit when any of the
// three units has an offset.
func Mul[R, D, S dimension.Dimension](q Quantity[D], that Quantity[S], u *unit.Unit[R]) (Quantity[R], error) {
	r, d, s := dimension.Of[R](), dimension.Of[D](), dimension.Of[S]()
	if !dimension.CompatibleAsProduct(r, d, s) {
		return Quantity[R]{}, fmt.Errorf("%v × %v is not %v: %w", d, s, r, ErrDimensionMismatch)
	}
	if err := checkScaleUnits(q.unit, that.unit, u); err != nil {
		return Quantity[R]{}, err
	}
	return New(u.ConvertFromRoot(q.ValueToRoot()*that.ValueToRoot()), u), nil
}

// Div returns q ÷ that expressed in u, whose dimension R must be the quotient of D
// and S. Errors are as for Mul.
func Div[R, D, S dimension.Dimension](q Quantity[D], that Quantity[S], u *unit.Unit[R]) (Quantity[R], error) {
	r, d, s := dimension.Of[R](), dimension.Of[D](), dimension.Of[S]()
	if !dimension.CompatibleAsQuotient(r, d, s) {
		return Quantity[R]{}, fmt.Errorf("%v ÷ %v is not %v: %w", d, s, r, ErrDimensionMismatch)
	}
	if err := checkScaleUnits(q.unit, that.unit, u); err != nil {
		return Quantity[R]{}, err
	}
	return New(u.ConvertFromRoot(q.ValueToRoot()/that.ValueToRoot()), u), nil
}

// scaler is satisfied by a *unit.Unit of any dimension.
type scaler interface {
	IsScaleUnit() bool
	Symbol() string
}

func checkScaleUnits(units ...scaler) error {
	for _, u := range units {
		if !u.IsScaleUnit() {
			return fmt.Errorf("%s: %w", u.Symbol(), ErrAffineUnit)
		}
	}
	return nil
}

// Sum adds every quantity, each converted to u, and returns the total in u.
func Sum[D dimension.Dimension](u *unit.Unit[D], qs ...Quantity[D]) Quantity[D] {
	total := 0.0
	for _, q := range qs {
		total += u.Convert(q.value, q.unit)
	}
	return New(total, u)
}
