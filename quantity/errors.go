package quantity

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("quantity")

var (
	// ErrDimensionMismatch is returned when the requested result dimension is not the
	// product (or quotient) of the operand dimensions.
	ErrDimensionMismatch = Error.New("dimension mismatch")

	// ErrAffineUnit is returned when a unit with an offset, such as celsius, takes part
	// in multiplication or division.
	ErrAffineUnit = Error.New("unit with offset cannot be multiplied or divided")
)
