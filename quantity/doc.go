// Package quantity provides values tagged with a unit of measure.
//
// A [Quantity] pairs a float64 with a *unit.Unit of the same dimension. The dimension
// is a type parameter, so adding a length to a mass does not compile:
//
//	d := quantity.New(1.5, kilometer)
//	e := d.Add(quantity.New(300, meter)) // 1.8 km
//
// Addition and subtraction convert the right operand into the left operand's unit,
// or into an explicit unit with AddIn and SubIn. Comparisons work on values
// converted to the root unit of the dimension.
//
// # Multiplication and Division
//
// [Mul] and [Div] produce a quantity of a third dimension. The caller names the
// result unit, and the result dimension must be the product or quotient of the
// operand dimensions:
//
//	speed, err := quantity.Div(d, quantity.New(2, hour), kilometerPerHour)
//
// Units with an offset, such as celsius, have no meaningful product and are
// rejected with [ErrAffineUnit].
//
// # Tolerance
//
// [Quantity.Equal] is exact. Conversions between unit systems rarely round-trip
// exactly, so [Quantity.Nearly] compares within a [Tolerance].
package quantity
