package unit

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("unit")

var (
	// ErrNilUnit is returned when a nil unit is registered.
	ErrNilUnit = Error.New("nil unit")

	// ErrAlreadyRegistered is returned when a unit is registered twice.
	ErrAlreadyRegistered = Error.New("unit already registered")

	// ErrParentNotRegistered is returned when a unit is registered before its parent.
	ErrParentNotRegistered = Error.New("parent unit not registered")

	// ErrRootConflict is returned when a second root is registered for one dimension.
	// Units under different roots cannot be converted into each other.
	ErrRootConflict = Error.New("dimension already has a root unit")
)
