package xshape

import "fmt"

// Line is a line that is still being drawn. It holds the number of
// segments that have been added to it since it was started at [O].
//
// A Line is not a shape. The only way to turn it into one is to close
// it with another Line, so every operation on an unclosed Line fails
// with [ErrUnopenedLine].
type Line int

// O is the starting point of every Line.
const O Line = 0

// LineState is the state of a Line that has not yet been closed.
type LineState int

const (
	// LineEmpty is the state of O itself.
	LineEmpty LineState = iota

	// LineExtended is the state of a Line with at least one segment.
	LineExtended
)

func (s LineState) String() string {
	switch s {
	case LineEmpty:
		return "empty"
	case LineExtended:
		return "extended"
	default:
		return fmt.Sprintf("LineState(%d)", int(s))
	}
}

// Begin returns O.
func Begin() Line {
	return O
}

// Extend is a functional form of [Line.Extend].
func Extend(l Line) Line {
	return l.Extend()
}

// CloseLine is a functional form of [Line.Close].
func CloseLine(left, right Line) Rect {
	return left.Close(right)
}

// Extend returns a Line one segment longer than l.
func (l Line) Extend() Line {
	return l + 1
}

// Len returns the number of segments in l.
func (l Line) Len() int {
	return int(l)
}

// State reports whether l is still O or has been extended.
func (l Line) State() LineState {
	if l == O {
		return LineEmpty
	}
	return LineExtended
}

// Close finishes a line, returning a Rect one unit tall. l is the
// opening end of the line and right is the rest of it, so
//
//	O.Close(O.Extend().Extend())
//
// is a line of width three: an implicit opening segment plus the two
// segments of right. Only right's length contributes to the result.
func (l Line) Close(right Line) Rect {
	return rt(right.Len()+1, 1)
}

// Resolve always returns ErrUnopenedLine.
func (l Line) Resolve() (Rect, error) {
	return Rect{}, fmt.Errorf("%w: line of length %v was never closed", ErrUnopenedLine, l.Len())
}

func (Line) shape() {}
