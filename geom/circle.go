package geom

import (
	"fmt"
	"math"
)

// IntersectCircle returns the two points at which l crosses the
// circle of the given radius centered at center. If l is tangent to
// the circle, both points are the same. The points are in no
// particular order.
//
// It returns an error wrapping [ErrNoIntersection] if l misses the
// circle entirely.
func IntersectCircle(l Line, center Vec, radius float64) ([2]Vec, error) {
	// Substituting the line into (x-cx)^2 + (y-cy)^2 = r^2 gives a
	// quadratic in the line's independent coordinate. For x = my + c
	// the roles of x and y swap.
	m, c := l.Slope(), l.Intercept()
	u, w := center.X, center.Y
	if l.Form() == XOfY {
		u, w = w, u
	}

	qa := -(1 + m*m)
	qb := 2 * (u - m*c + m*w)
	qc := radius*radius - u*u - c*c - w*w + 2*c*w

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return [2]Vec{}, fmt.Errorf("%v and circle at %v with radius %v: discriminant %v: %w", l, center, radius, disc, ErrNoIntersection)
	}

	sq := math.Sqrt(disc)
	return [2]Vec{
		l.Point((-qb + sq) / (2 * qa)),
		l.Point((-qb - sq) / (2 * qa)),
	}, nil
}
