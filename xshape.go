// Package xshape implements a small algebra over integer-dimensioned
// rectangles and lines.
//
// Rectangles are built either directly, with [Rt] and friends, or by
// growing a [Line] from the starting token [O] and closing it:
//
//	r := xshape.O.Close(xshape.O.Extend().Extend()) // (o- - -o)
//
// A rectangle with a width or height of one is a line along its other
// axis. For addition, subtraction and scalar multiplication a line
// acts as if its unit dimension were zero, so that two lines of width
// two add up to a line of width four rather than a two-row rectangle.
package xshape

import "errors"

var (
	// ErrDimension indicates a width or height that is not a positive
	// integer.
	ErrDimension = errors.New("invalid dimension")

	// ErrMultiplication indicates a product that could not be
	// formed, either because both operands are two-dimensional,
	// because the factor is not a number, or because the result is
	// not integral.
	ErrMultiplication = errors.New("invalid multiplication")

	// ErrDivision indicates a quotient that is not an exact integer.
	ErrDivision = errors.New("invalid division")

	// ErrPower indicates an exponent other than 0, 1, or 2.
	ErrPower = errors.New("invalid power")

	// ErrUnopenedLine is returned by any operation on a Line that has
	// not been closed into a Rect.
	ErrUnopenedLine = errors.New("line must be opened and closed with o")

	// ErrSyntax indicates malformed shape literal notation.
	ErrSyntax = errors.New("syntax error")
)
