package format

import (
	"bytes"

	"deedles.dev/xshape/geom"
)

// Format is a textual notation for a shape. A shape is drawn as one
// row of text per unit of height: edge rows along the top and bottom
// and interior rows in between. This package contains several
// predefined formats, such as [Literal].
type Format interface {
	// Edge appends an edge row for a shape of the given width to buf.
	// edges reports which of EdgeTop and EdgeBottom the row lies on.
	// A shape with a height of one has a single row that lies on both.
	Edge(buf []byte, width int, edges geom.Edges) []byte

	// Interior appends a row that lies on neither the top nor the
	// bottom edge.
	Interior(buf []byte, width int) []byte
}

// Various predefined Formats.
var (
	// Literal is the shape literal notation:
	//
	//	(o- - -o
	//	|[     ]
	//	|o- - -o)
	Literal formatLiteral

	// Box draws shapes with Unicode box-drawing characters.
	Box formatBox
)

type formatLiteral struct{}

func (formatLiteral) String() string { return "literal" }

func (formatLiteral) Edge(buf []byte, width int, edges geom.Edges) []byte {
	if edges.Has(geom.EdgeTop) {
		buf = append(buf, '(')
	} else {
		buf = append(buf, '|')
	}

	buf = append(buf, "o-"...)
	buf = append(buf, bytes.Repeat([]byte(" -"), max(width-1, 0))...)
	buf = append(buf, 'o')

	if edges.Has(geom.EdgeBottom) {
		buf = append(buf, ')')
	}
	return buf
}

func (formatLiteral) Interior(buf []byte, width int) []byte {
	buf = append(buf, "|["...)
	buf = append(buf, bytes.Repeat([]byte{' '}, max(2*width-1, 0))...)
	return append(buf, ']')
}

type formatBox struct{}

func (formatBox) String() string { return "box" }

func (formatBox) Edge(buf []byte, width int, edges geom.Edges) []byte {
	left, right := "├", "┤"
	switch {
	case edges.Has(geom.EdgeTop | geom.EdgeBottom):
		left, right = "╶", "╴"
	case edges.Has(geom.EdgeTop):
		left, right = "┌", "┐"
	case edges.Has(geom.EdgeBottom):
		left, right = "└", "┘"
	}

	buf = append(buf, left...)
	buf = append(buf, bytes.Repeat([]byte("─"), max(2*width-1, 0))...)
	return append(buf, right...)
}

func (formatBox) Interior(buf []byte, width int) []byte {
	buf = append(buf, "│"...)
	buf = append(buf, bytes.Repeat([]byte{' '}, max(2*width-1, 0))...)
	return append(buf, "│"...)
}

// ByName returns the predefined Format with the given name, as
// reported by its String method.
func ByName(name string) (Format, bool) {
	switch name {
	case Literal.String():
		return Literal, true
	case Box.String():
		return Box, true
	default:
		return nil, false
	}
}
