// Package geom provides the small numeric and edge vocabulary shared
// by the shape types and their notations.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that shape constructors can
// accept. Non-integer values are allowed by the constraint but are
// rejected at runtime unless they hold an exact integer.
type Scalar interface {
	constraints.Float | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
)

// RowEdges returns the horizontal edges that row i of a shape h rows
// tall lies on. A single-row shape is both its own top and bottom.
func RowEdges(i, h int) Edges {
	var e Edges
	if i == 0 {
		e |= EdgeTop
	}
	if i == h-1 {
		e |= EdgeBottom
	}
	return e
}

// Has reports whether all of the edges in o are set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}
