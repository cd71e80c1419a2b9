package geom_test

import (
	"testing"

	"deedles.dev/xshape/geom"
	"github.com/stretchr/testify/require"
)

func TestRowEdges(t *testing.T) {
	require.Equal(t, geom.EdgeTop|geom.EdgeBottom, geom.RowEdges(0, 1))
	require.Equal(t, geom.EdgeTop, geom.RowEdges(0, 3))
	require.Equal(t, geom.EdgeNone, geom.RowEdges(1, 3))
	require.Equal(t, geom.EdgeBottom, geom.RowEdges(2, 3))
}

func TestEdgesHas(t *testing.T) {
	e := geom.EdgeTop
	require.True(t, e.Has(geom.EdgeTop))
	require.False(t, e.Has(geom.EdgeBottom))
	require.False(t, e.Has(geom.EdgeTop|geom.EdgeBottom))
	require.True(t, e.Has(geom.EdgeNone))
	require.True(t, (geom.EdgeTop | geom.EdgeBottom).Has(geom.EdgeBottom))
}
