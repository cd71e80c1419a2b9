package xshape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"deedles.dev/xshape/geom"
	"github.com/spf13/cast"
)

// Rect is a rectangle with integer dimensions. Rects are values;
// every operation returns a new Rect rather than modifying its
// receiver.
//
// The zero Rect is the unit shape, 1x1.
type Rect struct {
	// Stored as one less than the actual dimensions so that the zero
	// value is the unit shape.
	w, h int
}

// rt returns a Rect with the given dimensions without checking them.
func rt(w, h int) Rect {
	return Rect{w: w - 1, h: h - 1}
}

// Rt returns a Rect with the given dimensions. Both must be at least
// one.
func Rt(w, h int) (Rect, error) {
	return RectOf(w, h)
}

// RectOf is like [Rt] but accepts any numeric type. Floating point
// dimensions must hold exact integers.
func RectOf[T geom.Scalar](w, h T) (Rect, error) {
	if w < 1 {
		return Rect{}, fmt.Errorf("%w: width must be at least one", ErrDimension)
	}
	if h < 1 {
		return Rect{}, fmt.Errorf("%w: height must be at least one", ErrDimension)
	}

	wi, ok := integral(float64(w))
	if !ok {
		return Rect{}, fmt.Errorf("%w: width must be an integer", ErrDimension)
	}
	hi, ok := integral(float64(h))
	if !ok {
		return Rect{}, fmt.Errorf("%w: height must be an integer", ErrDimension)
	}

	return rt(wi, hi), nil
}

// MustRt is like [Rt] but panics if the dimensions are invalid.
func MustRt(w, h int) Rect {
	r, err := Rt(w, h)
	if err != nil {
		panic(err)
	}
	return r
}

// toNumber converts v to a float64. Unlike cast, it does not treat nil
// or a blank string as zero.
func toNumber(v any) (float64, error) {
	switch v := v.(type) {
	case nil:
		return 0, errors.New("nil is not a number")
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, errors.New("blank string is not a number")
		}
	}
	return cast.ToFloat64E(v)
}

// integral returns v as an int if it holds an exact integer that fits.
func integral(v float64) (int, bool) {
	if v != math.Trunc(v) || math.Abs(v) >= math.MaxInt64 {
		return 0, false
	}
	return int(v), true
}

// Width returns the horizontal dimension of r.
func (r Rect) Width() int { return r.w + 1 }

// Height returns the vertical dimension of r.
func (r Rect) Height() int { return r.h + 1 }

// IsLine reports whether r is one-dimensional, meaning that either
// its width or its height is one. The unit shape is a line.
func (r Rect) IsLine() bool {
	return r.w == 0 || r.h == 0
}

// IsUnit reports whether r is 1x1.
func (r Rect) IsUnit() bool {
	return r == Rect{}
}

// Area returns the area of r.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Add returns the sum of r and o. Two lines along the same axis
// combine along that axis only.
func (r Rect) Add(o Rect) Rect {
	switch {
	case r.Width() == 1 && o.Width() == 1:
		return rt(1, r.Height()+o.Height())
	case r.Height() == 1 && o.Height() == 1:
		return rt(r.Width()+o.Width(), 1)
	default:
		return rt(r.Width()+o.Width(), r.Height()+o.Height())
	}
}

// Sub returns the difference of r and o. A dimension that comes out
// exactly zero is replaced with one, so that subtracting a shorter
// line from a longer one yields a line.
//
// A dimension that comes out negative is left as is. The result is
// then not a valid Rect and will be rejected by any operation that
// constructs a new Rect from its dimensions.
func (r Rect) Sub(o Rect) Rect {
	return rt(
		orOne(r.Width()-o.Width()),
		orOne(r.Height()-o.Height()),
	)
}

func orOne(v int) int {
	if v == 0 {
		return 1
	}
	return v
}

// Scale multiplies the dimensions of r by factor, which may be of any
// type that can be converted to a number, including numeric strings.
// A unit dimension is left as is, so scaling a line only lengthens
// it, and the unit shape is unaffected by scaling.
func (r Rect) Scale(factor any) (Rect, error) {
	f, err := toNumber(factor)
	if err != nil {
		return Rect{}, fmt.Errorf("%w: you must either multiply two shapes or a shape and a number: %w", ErrMultiplication, err)
	}

	if r.IsUnit() {
		return Rect{}, nil
	}

	w, h := r.Width(), r.Height()
	if w != 1 {
		w, err = scaleDim("width", w, f)
		if err != nil {
			return Rect{}, err
		}
	}
	if h != 1 {
		h, err = scaleDim("height", h, f)
		if err != nil {
			return Rect{}, err
		}
	}

	s, err := Rt(w, h)
	if err != nil {
		return Rect{}, fmt.Errorf("%w: %w", ErrMultiplication, err)
	}
	return s, nil
}

func scaleDim(name string, v int, f float64) (int, error) {
	p, ok := integral(float64(v) * f)
	if !ok {
		return 0, fmt.Errorf("%w: %s times %v is not an integer", ErrMultiplication, name, f)
	}
	return p, nil
}

// Mul returns the product of r and o. At most one of them may be
// two-dimensional.
//
// The product of two lines along the same axis is a rectangle with
// their lengths as its width and height. The product of a horizontal
// and a vertical line is a rectangle with the width of one and the
// height of the other.
func (r Rect) Mul(o Rect) (Rect, error) {
	if !r.IsLine() && !o.IsLine() {
		return Rect{}, fmt.Errorf("%w: cannot multiply two two-dimensional shapes", ErrMultiplication)
	}

	switch {
	case r.Height() == 1 && o.Height() == 1:
		return rt(r.Width(), o.Width()), nil
	case r.Width() == 1 && o.Width() == 1:
		return rt(r.Height(), o.Height()), nil
	default:
		return rt(max(r.Width(), o.Width()), max(r.Height(), o.Height())), nil
	}
}

// Div divides each non-unit dimension of r by divisor, which may be of
// any type that can be converted to a number. Each quotient must be
// an exact integer.
func (r Rect) Div(divisor any) (Rect, error) {
	d, err := toNumber(divisor)
	if err != nil {
		return Rect{}, fmt.Errorf("%w: divisor must be a number: %w", ErrDivision, err)
	}

	w, h := r.Width(), r.Height()
	if w != 1 {
		w, err = divDim("width", w, d)
		if err != nil {
			return Rect{}, err
		}
	}
	if h != 1 {
		h, err = divDim("height", h, d)
		if err != nil {
			return Rect{}, err
		}
	}

	return Rt(w, h)
}

func divDim(name string, v int, d float64) (int, error) {
	if d == 0 {
		return 0, fmt.Errorf("%w: %s divided by zero", ErrDivision, name)
	}

	q, ok := integral(float64(v) / d)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a multiple of %v", ErrDivision, name, d)
	}
	return q, nil
}

// Pow returns r*r, r, or the unit shape for exponents of 2, 1, and 0
// respectively.
func (r Rect) Pow(e int) (Rect, error) {
	switch e {
	case 2:
		return r.Mul(r)
	case 1:
		return r, nil
	case 0:
		return Rect{}, nil
	default:
		return Rect{}, fmt.Errorf("%w: cannot raise to a power other than 0, 1, or 2, got %v", ErrPower, e)
	}
}

// Invert returns r with its width and height swapped.
func (r Rect) Invert() Rect {
	return Rect{w: r.h, h: r.w}
}

// Contains reports whether o fits inside of r in either orientation.
func (r Rect) Contains(o Rect) bool {
	return (r.w >= o.w && r.h >= o.h) || (r.w >= o.h && r.h >= o.w)
}

// Eq reports whether r and o have the same dimensions in either
// orientation. Use == to compare orientation as well.
func (r Rect) Eq(o Rect) bool {
	return r == o || r == o.Invert()
}

// Row returns r with one more row added to its bottom. The dimensions
// of o are not taken into account.
func (r Rect) Row(o Rect) Rect {
	return Rect{w: r.w, h: r.h + 1}
}
