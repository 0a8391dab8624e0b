// Package unit provides units of measure organized as a forest per dimension.
//
// Every [Unit] belongs to one dimension, fixed by its type parameter. A root unit is
// the base of its dimension; every other unit names a parent of the same dimension
// plus a [Scale] and an offset:
//
//	kilogram := unit.NewRoot[Mass]("kilogram", "kg")
//	gram     := unit.New(kilogram, "gram", "g", unit.Factor(1e-3))
//	kelvin   := unit.NewRoot[Temperature]("kelvin", "K")
//	celsius  := unit.NewAffine(kelvin, "celsius", "C", unit.Factor(1), -273.15)
//
// Parents must exist before their children and units cannot be changed afterwards,
// so parent chains always end at a root.
//
// # Conversion
//
// Moving a value one link toward the parent computes scale × value − offset; moving
// it back computes (value + offset) ÷ scale. [Unit.Convert] climbs from the source
// unit only until it meets the target, which lets a subtree act as the effective base
// for a family of units, and otherwise climbs to the root and descends to the target.
//
// A [Converter] precomputes that walk for a fixed pair of units, for hot loops.
//
// # Registries
//
// A [Registry] records the units of one dimension and rejects registration orders
// that would leave the forest disconnected:
//
//	var masses = unit.NewRegistry[Mass](nil)
//
//	func init() {
//	    masses.MustRegister(kilogram, gram)
//	}
//
// # Errors
//
// Registry errors belong to the [Error] class:
//
//   - [ErrNilUnit] - a nil unit was registered
//   - [ErrAlreadyRegistered] - the unit is already registered
//   - [ErrParentNotRegistered] - the unit's parent was not registered first
//   - [ErrRootConflict] - the dimension already has a root
//
// Converting between units of disconnected trees, and deriving a unit from a nil
// parent, are programming errors and panic.
package unit
