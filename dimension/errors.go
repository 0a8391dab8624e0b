package dimension

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("dimension")

var (
	// ErrUnknownDimension is returned when a foreign dimension has no base in this basis.
	ErrUnknownDimension = Error.New("unknown dimension")

	// ErrPowerOutOfRange is returned when a power does not fit in an Encoding.
	ErrPowerOutOfRange = Error.New("power out of range")
)
