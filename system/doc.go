// Package system is a catalog of dimensions and units: the SI base units, common
// derived units, and the customary units that convert to them.
//
// Each base or derived dimension is a zero-size type usable as the type parameter
// of unit.Unit and quantity.Quantity:
//
//	d := quantity.New(26.2, system.Mile)
//	t := quantity.New(3, system.Hour)
//	v, err := quantity.Div(d, t, system.MilePerHour)
//
// # Registries
//
// Every dimension with units has a *unit.Registry, such as [Masses] or [Lengths],
// filled during package initialization. A registry lists the units of its
// dimension as a tree:
//
//	for _, u := range system.Lengths.Descendants(system.Yard) {
//	    fmt.Println(u.Name()) // foot, inch, mile
//	}
//
// Registration order follows declaration order, parents first, so initialization
// panics if a unit is declared under a parent outside its registry.
package system
