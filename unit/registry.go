package unit

import (
	"fmt"
	"log/slog"

	"github.com/zeebo/errs"

	"github.com/jacentio/dimensional/dimension"
)

// Registry records the units of one dimension as a single tree. Registering a unit
// requires its parent to be registered first, and only one root is accepted, so a
// registry that loads without error guarantees every pair of its units converts.
//
// Registration is meant to happen during init(); after that a Registry is read-only
// and safe for concurrent readers.
type Registry[D dimension.Dimension] struct {
	logger   *slog.Logger
	root     *Unit[D]
	units    []*Unit[D]
	children map[*Unit[D]][]*Unit[D]
}

// NewRegistry creates an empty Registry. A nil logger uses slog.Default().
func NewRegistry[D dimension.Dimension](logger *slog.Logger) *Registry[D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[D]{
		logger:   logger,
		units:    []*Unit[D]{},
		children: make(map[*Unit[D]][]*Unit[D]),
	}
}

// Register adds a unit to the registry.
func (r *Registry[D]) Register(u *Unit[D]) error {
	if u == nil {
		return ErrNilUnit
	}
	if r.Contains(u) {
		return ErrAlreadyRegistered
	}

	if u.IsRoot() {
		if r.root != nil {
			r.logger.Warn("rejected second root unit",
				"dimension", dimension.Of[D]().String(),
				"unit", u.name,
				"root", r.root.name,
			)
			return ErrRootConflict
		}
		r.root = u
	} else if !r.Contains(u.parent) {
		r.logger.Warn("rejected unit with unregistered parent",
			"unit", u.name,
			"parent", u.parent.name,
		)
		return ErrParentNotRegistered
	}

	r.units = append(r.units, u)
	r.children[u] = nil
	if u.parent != nil {
		r.children[u.parent] = append(r.children[u.parent], u)
	}

	r.logger.Debug("registered unit",
		"unit", u.name,
		"symbol", u.symbol,
		"depth", u.Depth(),
	)
	return nil
}

// RegisterAll registers units in order and returns the combined failures.
func (r *Registry[D]) RegisterAll(units ...*Unit[D]) error {
	var group errs.Group
	for _, u := range units {
		group.Add(r.Register(u))
	}
	return group.Err()
}

// MustRegister registers units in order and panics on the first failure.
func (r *Registry[D]) MustRegister(units ...*Unit[D]) {
	for _, u := range units {
		if err := r.Register(u); err != nil {
			name := "<nil>"
			if u != nil {
				name = u.name
			}
			panic(fmt.Sprintf("unit: register %s: %v", name, err))
		}
	}
}

// Root returns the registered root unit, or nil if none is registered.
func (r *Registry[D]) Root() *Unit[D] {
	return r.root
}

// Units returns all registered units in registration order.
func (r *Registry[D]) Units() []*Unit[D] {
	return append([]*Unit[D](nil), r.units...)
}

// Len returns the number of registered units.
func (r *Registry[D]) Len() int {
	return len(r.units)
}

// Contains reports whether u is registered.
func (r *Registry[D]) Contains(u *Unit[D]) bool {
	_, ok := r.children[u]
	return ok
}

// ChildrenOf returns the registered units whose parent is u.
func (r *Registry[D]) ChildrenOf(u *Unit[D]) []*Unit[D] {
	return append([]*Unit[D](nil), r.children[u]...)
}

// HasChildren reports whether any registered unit has u as its parent.
func (r *Registry[D]) HasChildren(u *Unit[D]) bool {
	return len(r.children[u]) > 0
}

// Descendants returns every registered unit below u, depth first.
func (r *Registry[D]) Descendants(u *Unit[D]) []*Unit[D] {
	var out []*Unit[D]
	var walk func(*Unit[D])
	walk = func(n *Unit[D]) {
		for _, c := range r.children[n] {
			out = append(out, c)
			walk(c)
		}
	}
	walk(u)
	return out
}
