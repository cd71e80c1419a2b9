package xshape

import (
	"io"
	"iter"
	"slices"
	"strings"

	"deedles.dev/xiter"
	"deedles.dev/xshape/format"
	"deedles.dev/xshape/geom"
)

// Rows returns an iterator over the rows of r drawn in the notation f,
// top to bottom. The iterator may be used more than once.
func (r Rect) Rows(f format.Format) iter.Seq[string] {
	return func(yield func(string) bool) {
		w, h := r.Width(), r.Height()

		var buf []byte
		for i := range h {
			edges := geom.RowEdges(i, h)
			if edges == geom.EdgeNone {
				buf = f.Interior(buf[:0], w)
			} else {
				buf = f.Edge(buf[:0], w, edges)
			}

			if !yield(string(buf)) {
				return
			}
		}
	}
}

// Lines returns an iterator over the rows of r in the literal
// notation.
func (r Rect) Lines() iter.Seq[string] {
	return r.Rows(format.Literal)
}

// String returns the literal notation of r. A 3x3 Rect, for example,
// is
//
//	(o- - -o
//	|[     ]
//	|o- - -o)
func (r Rect) String() string {
	return strings.Join(slices.Collect(r.Lines()), "\n")
}

// WriteTo writes the literal notation of r to w. What is written is
// identical to the return value of String.
func (r Rect) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, line := range xiter.Enumerate(r.Lines()) {
		if i > 0 {
			line = "\n" + line
		}

		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
