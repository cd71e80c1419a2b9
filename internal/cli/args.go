package cli

import (
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/xshape"
)

// parseShape parses a shape argument. It accepts WxH, the literal
// notation, or an unclosed line made of an o followed by segments.
func parseShape(arg string) (xshape.Shape, error) {
	switch {
	case strings.HasPrefix(arg, "("):
		return xshape.Parse(arg)
	case strings.HasPrefix(arg, "o"):
		return parseLine(arg)
	}

	ws, hs, ok := strings.Cut(strings.ToLower(arg), "x")
	if !ok {
		return nil, fmt.Errorf("shape %q must be WxH or literal notation", arg)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return nil, fmt.Errorf("shape %q: width: %w", arg, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return nil, fmt.Errorf("shape %q: height: %w", arg, err)
	}
	return xshape.Rt(w, h)
}

// parseLine parses an unclosed line such as "o- - -", returning a
// Line with one segment per dash.
func parseLine(arg string) (xshape.Line, error) {
	l := xshape.Begin()
	for _, c := range arg[1:] {
		switch c {
		case '-':
			l = l.Extend()
		case ' ':
		default:
			return l, fmt.Errorf("line %q: unexpected %q", arg, c)
		}
	}
	return l, nil
}

func parseShapes(args []string) ([]xshape.Shape, error) {
	shapes := make([]xshape.Shape, 0, len(args))
	for _, arg := range args {
		s, err := parseShape(arg)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func parseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return n, nil
}
