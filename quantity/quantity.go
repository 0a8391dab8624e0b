package quantity

import (
	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/unit"
)

// Quantity is a value measured in a unit of dimension D. Quantities are immutable;
// every operation returns a new one.
type Quantity[D dimension.Dimension] struct {
	value float64
	unit  *unit.Unit[D]
}

// New returns value measured in u. It panics if u is nil.
func New[D dimension.Dimension](value float64, u *unit.Unit[D]) Quantity[D] {
	if u == nil {
		panic("quantity: nil unit")
	}
	return Quantity[D]{value: value, unit: u}
}

// Value returns the magnitude in q's unit.
func (q Quantity[D]) Value() float64 {
	return q.value
}

// Unit returns q's unit.
func (q Quantity[D]) Unit() *unit.Unit[D] {
	return q.unit
}

// ValueToRoot returns q's magnitude in the root unit of its tree. Comparisons and
// products work on this value.
func (q Quantity[D]) ValueToRoot() float64 {
	return q.unit.ConvertToRoot(q.value)
}

// Convert returns q expressed in to.
func (q Quantity[D]) Convert(to *unit.Unit[D]) Quantity[D] {
	return New(to.Convert(q.value, q.unit), to)
}

// Add returns q + that in q's unit.
func (q Quantity[D]) Add(that Quantity[D]) Quantity[D] {
	return New(q.value+q.unit.Convert(that.value, that.unit), q.unit)
}

// AddIn returns q + that in u.
func (q Quantity[D]) AddIn(that Quantity[D], u *unit.Unit[D]) Quantity[D] {
	return New(u.Convert(q.value, q.unit)+u.Convert(that.value, that.unit), u)
}

// Sub returns q - that in q's unit.
func (q Quantity[D]) Sub(that Quantity[D]) Quantity[D] {
	return New(q.value-q.unit.Convert(that.value, that.unit), q.unit)
}

// SubIn returns q - that in u.
func (q Quantity[D]) SubIn(that Quantity[D], u *unit.Unit[D]) Quantity[D] {
	return New(u.Convert(q.value, q.unit)-u.Convert(that.value, that.unit), u)
}
