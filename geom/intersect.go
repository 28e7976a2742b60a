package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Intersect returns the point at which l1 and l2 cross.
//
// The lines must not be parallel. This is not checked; if it matters,
// call [Parallel] first. Parallel lines yield a point with non-finite
// coordinates.
func Intersect(l1, l2 Line) (p Vec) {
	m1, c1 := l1.Slope(), l1.Intercept()
	m2, c2 := l2.Slope(), l2.Intercept()

	switch Classify(l1, l2) {
	case Both:
		p.X = (c2 - c1) / (m1 - m2)
		p.Y = m1*p.X + c1
	case First:
		p.X = (c2 + m2*c1) / (1 - m1*m2)
		p.Y = m1*p.X + c1
	case Second:
		p.X = (c1 + m1*c2) / (1 - m1*m2)
		p.Y = m2*p.X + c2
	case Neither:
		p.Y = (c2 - c1) / (m1 - m2)
		p.X = m1*p.Y + c1
	}
	return p
}

// RayExit returns the point at which the ray starting at origin and
// passing through through leaves r, along with the edge of r that it
// leaves through.
//
// The ray's direction selects two candidate edges, a horizontal one
// and a vertical one. The horizontal edge is used if the ray meets it
// at an x within [-1, 1] and the vertical one otherwise. In other
// words, the result is only correct if r is the unit square spanning
// [-1, 1] on both axes, such as normalized device coordinates.
//
// It returns an error wrapping [ErrDegenerate] if origin and through
// are the same point.
func RayExit(origin, through Vec, r Rect) (Vec, Edges, error) {
	l, err := Through(origin, through)
	if err != nil {
		return Vec{}, EdgeNone, err
	}

	var p Vec
	var edge Edges
	for i, e := range xiter.Enumerate(exitCandidates(origin.AngleTo(through))) {
		p, edge = Intersect(l, r.Edge(e)), e
		if i > 0 || inUnitRange(p.X) {
			break
		}
	}
	return p, edge, nil
}

// exitCandidates yields the edges that a ray in the direction a might
// leave a rectangle through, horizontal edge first.
func exitCandidates(a float64) iter.Seq[Edges] {
	var h, v Edges
	switch {
	case -Pi < a && a <= -HalfPi:
		h, v = EdgeBottom, EdgeLeft
	case -HalfPi < a && a <= 0:
		h, v = EdgeBottom, EdgeRight
	case 0 < a && a <= HalfPi:
		h, v = EdgeTop, EdgeRight
	default:
		// (Pi/2, Pi], plus -Pi which is the same direction as Pi.
		h, v = EdgeTop, EdgeLeft
	}

	return xiter.Of(h, v)
}

func inUnitRange(v float64) bool {
	return -1 <= v && v <= 1
}
