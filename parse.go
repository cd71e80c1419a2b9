package xshape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse parses s as a shape in the literal notation produced by
// [Rect.String].
func Parse(s string) (Rect, error) {
	return Decode(strings.NewReader(s))
}

// Decode reads a shape in the literal notation from r. Decoding stops
// at the row that closes the shape. Trailing whitespace on each row is
// ignored.
func Decode(r io.Reader) (Rect, error) {
	d := decoder{br: bufio.NewReader(r)}
	return d.Decode()
}

type decoder struct {
	br   *bufio.Reader
	line int
	err  error
}

func (d *decoder) Decode() (r Rect, err error) {
	if d.err != nil {
		return Rect{}, d.err
	}

	defer d.catch(&err)

	w, closed := d.edge('(', d.next())
	if closed {
		return rt(w, 1), nil
	}

	h := 1
	for {
		row := d.next()
		h++
		switch {
		case strings.HasPrefix(row, "|["):
			d.interior(row, w)
		case strings.HasPrefix(row, "|o"):
			bw, closed := d.edge('|', row)
			if bw != w {
				d.throw(fmt.Errorf("bottom width %v does not match top width %v", bw, w))
			}
			if !closed {
				d.throw(errors.New("bottom edge must end with \"o)\""))
			}
			return rt(w, h), nil
		default:
			d.throw(fmt.Errorf("unexpected row %q", row))
		}
	}
}

// next returns the next row, ignoring trailing whitespace. Rows may be
// of any length.
func (d *decoder) next() string {
	d.line++
	row, err := d.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.throw(err)
		}
		if row == "" {
			d.throw(io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(row, " \t\r\n")
}

// edge parses an edge row starting with open and returns its width
// and whether or not it closes the shape.
func (d *decoder) edge(open byte, line string) (w int, closed bool) {
	rest, ok := strings.CutPrefix(line, string(open)+"o-")
	if !ok {
		d.throw(fmt.Errorf("edge must start with %q", string(open)+"o-"))
	}

	w = 1
	for strings.HasPrefix(rest, " -") {
		w++
		rest = rest[2:]
	}

	switch rest {
	case "o":
		return w, false
	case "o)":
		return w, true
	default:
		d.throw(fmt.Errorf("edge must end with \"o\" or \"o)\", not %q", rest))
		return 0, false
	}
}

func (d *decoder) interior(row string, w int) {
	inner, ok := strings.CutPrefix(row, "|[")
	if ok {
		inner, ok = strings.CutSuffix(inner, "]")
	}
	if !ok {
		d.throw(fmt.Errorf("interior must look like \"|[ ]\", not %q", row))
	}

	if strings.Trim(inner, " ") != "" {
		d.throw(fmt.Errorf("interior must be blank, not %q", inner))
	}
	if len(inner) != 2*w-1 {
		d.throw(fmt.Errorf("interior width %v does not match edge width %v", (len(inner)+1)/2, w))
	}
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case decoderError:
		d.err = fmt.Errorf("%w: line %v: %w", ErrSyntax, d.line, r.err)
		*err = d.err
	case nil:
		*err = d.err
	default:
		panic(r)
	}
}
