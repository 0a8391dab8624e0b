package quantity

import (
	"cmp"

	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether q and that have exactly the same root value.
// Conversions between unit systems rarely round-trip exactly; use Nearly for those.
func (q Quantity[D]) Equal(that Quantity[D]) bool {
	return q.ValueToRoot() == that.ValueToRoot()
}

// NotEqual reports whether the root values differ.
func (q Quantity[D]) NotEqual(that Quantity[D]) bool {
	return q.ValueToRoot() != that.ValueToRoot()
}

// Less reports whether q < that.
func (q Quantity[D]) Less(that Quantity[D]) bool {
	return q.ValueToRoot() < that.ValueToRoot()
}

// LessOrEqual reports whether q <= that.
func (q Quantity[D]) LessOrEqual(that Quantity[D]) bool {
	return q.ValueToRoot() <= that.ValueToRoot()
}

// Greater reports whether q > that.
func (q Quantity[D]) Greater(that Quantity[D]) bool {
	return q.ValueToRoot() > that.ValueToRoot()
}

// GreaterOrEqual reports whether q >= that.
func (q Quantity[D]) GreaterOrEqual(that Quantity[D]) bool {
	return q.ValueToRoot() >= that.ValueToRoot()
}

// Compare returns -1, 0 or +1 as q is less than, equal to, or greater than that.
// It follows cmp.Compare, so it can be passed to slices.SortFunc.
func (q Quantity[D]) Compare(that Quantity[D]) int {
	return cmp.Compare(q.ValueToRoot(), that.ValueToRoot())
}

// Nearly reports whether q and that are equal within tol.
func (q Quantity[D]) Nearly(that Quantity[D], tol Tolerance) bool {
	tol.validate()
	return scalar.EqualWithinAbsOrRel(q.ValueToRoot(), that.ValueToRoot(), tol.Absolute, tol.Relative)
}
