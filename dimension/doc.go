// Package dimension encodes physical dimensions as integer exponents over a fixed basis.
//
// A dimension such as speed is the product of base dimensions raised to powers:
// L¹·T⁻¹. An [Encoding] stores one exponent per [Base], index-aligned with the basis:
//
//	Mass, Length, Time, Current, Temperature, Intensity, Amount, Angle
//
// # Dimension Types
//
// Concrete dimensions are types implementing [Dimension]. They are normally zero-size
// structs whose Encoding method returns a package-level constant:
//
//	type Speed struct{}
//
//	var speed = dimension.EncodePowers(0, 1, -1, 0, 0, 0, 0, 0)
//
//	func (Speed) Encoding() dimension.Encoding { return speed }
//
// Because the type itself carries the dimension, generic code parameterized by a
// Dimension (see the unit and quantity packages) cannot mix dimensions by accident.
// [Of] recovers the encoding of a type parameter without an instance.
//
// # Products and Quotients
//
// [CompatibleAsProduct] and [CompatibleAsQuotient] check that a requested result
// dimension is the elementwise sum or difference of two operand dimensions. They are
// what guards cross-dimension multiplication and division of quantities.
//
// # Interop
//
// [Encoding.Dimensions] and [FromDimensions] translate to and from the dimension maps
// of gonum.org/v1/gonum/unit, whose SI basis lines up with this one.
package dimension
