package geom_test

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

// requirePoints checks that got holds the points in want in any order.
func requirePoints(t *testing.T, want, got [2]geom.Vec) {
	t.Helper()

	order := func(p, q geom.Vec) int {
		return cmp.Or(cmp.Compare(p.X, q.X), cmp.Compare(p.Y, q.Y))
	}
	slices.SortFunc(want[:], order)
	slices.SortFunc(got[:], order)
	for i := range want {
		require.InDelta(t, want[i].X, got[i].X, 1e-9, "want %v, got %v", want, got)
		require.InDelta(t, want[i].Y, got[i].Y, 1e-9, "want %v, got %v", want, got)
	}
}

func TestIntersectCircle(t *testing.T) {
	tests := []struct {
		name   string
		line   geom.Line
		center geom.Vec
		radius float64
		points [2]geom.Vec
	}{
		{"Horizontal", geom.YForm{}, geom.V(0, 0), 5, [2]geom.Vec{geom.V(5, 0), geom.V(-5, 0)}},
		{"Vertical", geom.XForm{}, geom.V(0, 0), 5, [2]geom.Vec{geom.V(0, 5), geom.V(0, -5)}},
		{"OffCenter", geom.YForm{C: 3}, geom.V(2, 3), 1, [2]geom.Vec{geom.V(1, 3), geom.V(3, 3)}},
		{"OffCenterVertical", geom.XForm{C: -1}, geom.V(-1, 4), 2, [2]geom.Vec{geom.V(-1, 2), geom.V(-1, 6)}},
		{"Diagonal", geom.YForm{M: 1}, geom.V(0, 0), 2, [2]geom.Vec{geom.V(math.Sqrt2, math.Sqrt2), geom.V(-math.Sqrt2, -math.Sqrt2)}},
		{"Tangent", geom.YForm{C: 5}, geom.V(0, 0), 5, [2]geom.Vec{geom.V(0, 5), geom.V(0, 5)}},
		{"TangentVertical", geom.XForm{C: 1}, geom.V(4, 4), 3, [2]geom.Vec{geom.V(1, 4), geom.V(1, 4)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			points, err := geom.IntersectCircle(test.line, test.center, test.radius)
			require.NoError(t, err)
			requirePoints(t, test.points, points)
		})
	}
}

func TestIntersectCircleOnBoth(t *testing.T) {
	lines := [][2]geom.Vec{
		{geom.V(1, 1), geom.V(3, 2)},
		{geom.V(1, 1), geom.V(1.5, 4)},
		{geom.V(0, 0.5), geom.V(-3, -1)},
		{geom.V(2.5, 0), geom.V(1.5, -2)},
	}
	center, radius := geom.V(1, 1), 2.0

	for _, pts := range lines {
		l, err := geom.Through(pts[0], pts[1])
		require.NoError(t, err)

		points, err := geom.IntersectCircle(l, center, radius)
		require.NoError(t, err, "%v", l)
		for _, p := range points {
			requireOnLine(t, l, p)
			require.InDelta(t, radius, p.Dist(center), 1e-9, "%v on %v", p, l)
		}
	}
}

func TestIntersectCircleMiss(t *testing.T) {
	tests := []struct {
		name   string
		line   geom.Line
		center geom.Vec
		radius float64
	}{
		{"Above", geom.YForm{C: 6}, geom.V(0, 0), 5},
		{"Right", geom.XForm{C: 10}, geom.V(2, 2), 3},
		{"Sloped", geom.YForm{M: 1, C: 10}, geom.V(0, 0), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := geom.IntersectCircle(test.line, test.center, test.radius)
			require.ErrorIs(t, err, geom.ErrNoIntersection)
		})
	}
}
