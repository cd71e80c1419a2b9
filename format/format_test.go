package format_test

import (
	"testing"

	"deedles.dev/xshape/format"
	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		row  func([]byte) []byte
		want string
	}{
		{"Point", func(b []byte) []byte { return format.Literal.Edge(b, 1, geom.EdgeTop|geom.EdgeBottom) }, "(o-o)"},
		{"Line", func(b []byte) []byte { return format.Literal.Edge(b, 4, geom.EdgeTop|geom.EdgeBottom) }, "(o- - - -o)"},
		{"Top", func(b []byte) []byte { return format.Literal.Edge(b, 3, geom.EdgeTop) }, "(o- - -o"},
		{"Bottom", func(b []byte) []byte { return format.Literal.Edge(b, 3, geom.EdgeBottom) }, "|o- - -o)"},
		{"Interior", func(b []byte) []byte { return format.Literal.Interior(b, 3) }, "|[     ]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, string(test.row(nil)))
		})
	}
}

func TestBox(t *testing.T) {
	require.Equal(t, "┌───┐", string(format.Box.Edge(nil, 2, geom.EdgeTop)))
	require.Equal(t, "│   │", string(format.Box.Interior(nil, 2)))
	require.Equal(t, "└───┘", string(format.Box.Edge(nil, 2, geom.EdgeBottom)))
	require.Equal(t, "╶───╴", string(format.Box.Edge(nil, 2, geom.EdgeTop|geom.EdgeBottom)))
}

func TestAppend(t *testing.T) {
	buf := []byte("> ")
	buf = format.Literal.Interior(buf, 1)
	require.Equal(t, "> |[ ]", string(buf))
}

func TestByName(t *testing.T) {
	f, ok := format.ByName("literal")
	require.True(t, ok)
	require.Equal(t, format.Literal, f)

	f, ok = format.ByName("box")
	require.True(t, ok)
	require.Equal(t, format.Box, f)

	_, ok = format.ByName("argb")
	require.False(t, ok)
}
