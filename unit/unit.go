package unit

import (
	"fmt"

	"github.com/jacentio/dimensional/dimension"
	"github.com/jacentio/dimensional/internal/chain"
)

// Unit is a node in the unit forest of dimension D. A root unit has no parent; every
// other unit is related to its parent by a scale and an offset:
//
//	parent value = scale × value − offset
//
// Units are immutable and safe for concurrent use.
type Unit[D dimension.Dimension] struct {
	parent *Unit[D]
	scale  Scale
	offset float64
	name   string
	symbol string
}

// NewRoot creates a root unit for D.
func NewRoot[D dimension.Dimension](name, symbol string) *Unit[D] {
	return &Unit[D]{
		scale:  Identity,
		name:   name,
		symbol: symbol,
	}
}

// New creates a unit whose value in parent is scale × value.
func New[D dimension.Dimension](parent *Unit[D], name, symbol string, scale Scale) *Unit[D] {
	return NewAffine(parent, name, symbol, scale, 0)
}

// NewAffine creates a unit whose value in parent is scale × value − offset.
func NewAffine[D dimension.Dimension](parent *Unit[D], name, symbol string, scale Scale, offset float64) *Unit[D] {
	if parent == nil {
		panic(fmt.Sprintf("unit: %q derived from a nil parent", name))
	}
	return &Unit[D]{
		parent: parent,
		scale:  scale,
		offset: offset,
		name:   name,
		symbol: symbol,
	}
}

// NewPrefixed creates a unit named by prefixing parent's name and symbol with the
// scale's, e.g. kilo + meter gives kilometer (km).
func NewPrefixed[D dimension.Dimension](parent *Unit[D], scale Scale) *Unit[D] {
	if parent == nil {
		panic(fmt.Sprintf("unit: %s-prefixed unit derived from a nil parent", scale.Name()))
	}
	return New(parent, scale.Name()+parent.name, scale.Symbol()+parent.symbol, scale)
}

// Parent returns the parent unit, or nil for a root.
func (u *Unit[D]) Parent() *Unit[D] {
	return u.parent
}

// Scale returns the scale relative to the parent.
func (u *Unit[D]) Scale() Scale {
	return u.scale
}

// Offset returns the offset relative to the parent.
func (u *Unit[D]) Offset() float64 {
	return u.offset
}

// Name returns the unit name, e.g. "kilometer".
func (u *Unit[D]) Name() string {
	return u.name
}

// Symbol returns the unit symbol, e.g. "km".
func (u *Unit[D]) Symbol() string {
	return u.symbol
}

func (u *Unit[D]) String() string {
	return u.symbol
}

// Root follows parent links to the root of u's tree.
func (u *Unit[D]) Root() *Unit[D] {
	for u.parent != nil {
		u = u.parent
	}
	return u
}

// Depth returns the number of parent links between u and its root.
func (u *Unit[D]) Depth() int {
	n := 0
	for p := u.parent; p != nil; p = p.parent {
		n++
	}
	return n
}

// IsRoot reports whether u has no parent.
func (u *Unit[D]) IsRoot() bool {
	return u.parent == nil
}

// IsParent reports whether p is u's immediate parent.
func (u *Unit[D]) IsParent(p *Unit[D]) bool {
	return u.parent != nil && u.parent == p
}

// IsAncestor reports whether a is u or one of u's ancestors.
func (u *Unit[D]) IsAncestor(a *Unit[D]) bool {
	for n := u; n != nil; n = n.parent {
		if n == a {
			return true
		}
	}
	return false
}

// IsScaleUnit reports whether u has no offset. Only scale units take part in
// multiplication and division.
func (u *Unit[D]) IsScaleUnit() bool {
	return u.offset == 0
}

func (u *Unit[D]) link() chain.Step {
	return chain.Step{Factor: u.scale.factor, Offset: u.offset}
}

// ConvertToParent converts value in u to its parent. Roots return value unchanged.
func (u *Unit[D]) ConvertToParent(value float64) float64 {
	if u.parent == nil {
		return value
	}
	return u.link().Up(value)
}

// ConvertFromParent converts value in u's parent to u. Roots return value unchanged.
func (u *Unit[D]) ConvertFromParent(value float64) float64 {
	if u.parent == nil {
		return value
	}
	return u.link().Down(value)
}

// ConvertToRoot converts value in u to u's root.
func (u *Unit[D]) ConvertToRoot(value float64) float64 {
	for n := u; n.parent != nil; n = n.parent {
		value = n.ConvertToParent(value)
	}
	return value
}

// ConvertFromRoot converts value in u's root to u.
func (u *Unit[D]) ConvertFromRoot(value float64) float64 {
	if u.parent == nil {
		return value
	}
	return u.ConvertFromParent(u.parent.ConvertFromRoot(value))
}

// Convert converts value expressed in from into u.
//
// The value climbs from's parent chain only until it reaches u, so when u is an
// ancestor of from the root is never visited. Otherwise it climbs to the root and
// descends to u. Convert panics if from and u do not share a root.
func (u *Unit[D]) Convert(value float64, from *Unit[D]) float64 {
	for from != u {
		if from.parent == nil {
			mustShareRoot(u, from)
			return u.ConvertFromRoot(value)
		}
		value = from.ConvertToParent(value)
		from = from.parent
	}
	return value
}

func mustShareRoot[D dimension.Dimension](u, root *Unit[D]) {
	if u.Root() != root {
		panic(fmt.Sprintf("unit: %s (root %s) and root %s are in disconnected trees", u.name, u.Root().name, root.name))
	}
}
