package geom_test

import (
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := geom.Around(geom.V(1, 2), geom.V(2, 1))
	require.Equal(t, geom.Rt(-1, 3, 3, 1), r)
	require.Equal(t, geom.V(1, 2), r.Center())
	require.Equal(t, 4.0, r.Dx())
	require.Equal(t, 2.0, r.Dy())

	require.True(t, r.Contains(geom.V(0, 2)))
	require.True(t, r.Contains(geom.V(2.9, 1.1)))
	require.False(t, r.Contains(geom.V(-1, 2)), "left edge")
	require.False(t, r.Contains(geom.V(1, 3)), "top edge")
	require.False(t, r.Contains(geom.V(4, 2)))
	require.False(t, r.Contains(geom.V(1, 0)))
}

func TestRectEdges(t *testing.T) {
	r := geom.Rt(-2, 3, 5, -4)

	var edges []geom.Edges
	for e, l := range r.Edges() {
		edges = append(edges, e)
		require.Zero(t, l.Slope())
		require.Equal(t, r.Edge(e), l)
	}
	require.Equal(t, []geom.Edges{geom.EdgeTop, geom.EdgeBottom, geom.EdgeLeft, geom.EdgeRight}, edges)

	require.Equal(t, geom.YForm{C: 5}, r.Edge(geom.EdgeTop))
	require.Equal(t, geom.YForm{C: -4}, r.Edge(geom.EdgeBottom))
	require.Equal(t, geom.XForm{C: -2}, r.Edge(geom.EdgeLeft))
	require.Equal(t, geom.XForm{C: 3}, r.Edge(geom.EdgeRight))

	require.Panics(t, func() { r.Edge(geom.EdgeTop | geom.EdgeLeft) })
}

func TestEdgesString(t *testing.T) {
	require.Equal(t, "none", geom.EdgeNone.String())
	require.Equal(t, "right", geom.EdgeRight.String())
	require.Equal(t, "top|left", (geom.EdgeLeft | geom.EdgeTop).String())
}
