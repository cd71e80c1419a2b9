package xshape

import (
	"io"
	"iter"
)

// Shape is an operand of the functions in this package. It is
// implemented by Rect, which resolves to itself, and by Line, which
// never resolves because a Line has to be closed before it is a
// shape.
type Shape interface {
	Resolve() (Rect, error)
	shape()
}

var (
	_ Shape = Rect{}
	_ Shape = O
)

// Resolve returns r.
func (r Rect) Resolve() (Rect, error) { return r, nil }

func (Rect) shape() {}

func resolve2(a, b Shape) (Rect, Rect, error) {
	ra, err := a.Resolve()
	if err != nil {
		return Rect{}, Rect{}, err
	}
	rb, err := b.Resolve()
	if err != nil {
		return Rect{}, Rect{}, err
	}
	return ra, rb, nil
}

// Area returns the area of s. See [Rect.Area].
func Area(s Shape) (int, error) {
	r, err := s.Resolve()
	if err != nil {
		return 0, err
	}
	return r.Area(), nil
}

// Add returns the sum of a and b. See [Rect.Add].
func Add(a, b Shape) (Rect, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Rect{}, err
	}
	return ra.Add(rb), nil
}

// Sub returns the difference of a and b. See [Rect.Sub].
func Sub(a, b Shape) (Rect, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Rect{}, err
	}
	return ra.Sub(rb), nil
}

// Scale multiplies s by a number. See [Rect.Scale].
func Scale(s Shape, factor any) (Rect, error) {
	r, err := s.Resolve()
	if err != nil {
		return Rect{}, err
	}
	return r.Scale(factor)
}

// Mul returns the product of two shapes. See [Rect.Mul].
func Mul(a, b Shape) (Rect, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Rect{}, err
	}
	return ra.Mul(rb)
}

// Div divides s by a number. See [Rect.Div].
func Div(s Shape, divisor any) (Rect, error) {
	r, err := s.Resolve()
	if err != nil {
		return Rect{}, err
	}
	return r.Div(divisor)
}

// Pow raises s to the power e. See [Rect.Pow].
func Pow(s Shape, e int) (Rect, error) {
	r, err := s.Resolve()
	if err != nil {
		return Rect{}, err
	}
	return r.Pow(e)
}

// Invert swaps the width and height of s.
func Invert(s Shape) (Rect, error) {
	r, err := s.Resolve()
	if err != nil {
		return Rect{}, err
	}
	return r.Invert(), nil
}

// Contains reports whether b fits inside of a. See [Rect.Contains].
func Contains(a, b Shape) (bool, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return false, err
	}
	return ra.Contains(rb), nil
}

// Eq reports whether a and b are the same shape in either
// orientation.
func Eq(a, b Shape) (bool, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return false, err
	}
	return ra.Eq(rb), nil
}

// Row adds a row to a. See [Rect.Row].
func Row(a, b Shape) (Rect, error) {
	ra, rb, err := resolve2(a, b)
	if err != nil {
		return Rect{}, err
	}
	return ra.Row(rb), nil
}

// Lines returns the rows of the literal notation of s.
func Lines(s Shape) (iter.Seq[string], error) {
	r, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	return r.Lines(), nil
}

// Render writes the literal notation of s to w.
func Render(w io.Writer, s Shape) error {
	r, err := s.Resolve()
	if err != nil {
		return err
	}
	_, err = r.WriteTo(w)
	return err
}
