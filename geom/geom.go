// Package geom provides a small kernel of 2D line geometry.
//
// Lines are infinite and stored in one of two forms, y = mx + c or
// x = my + c, whichever keeps the slope within [-1, 1]. Functions are
// provided to build lines through points, intersect them with each
// other, with the sides of a rectangle, and with circles, and to
// classify points against them.
//
// Every function in this package is a pure function of its arguments
// and is safe for concurrent use.
package geom

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom functions can
// convert from.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Angle constants, in radians.
const (
	Pi        = 3.14159265358979323846264338327950288419716939937510582097494459
	TwoPi     = 2 * Pi
	HalfPi    = Pi / 2
	QuarterPi = Pi / 4
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edgeNames = [...]struct {
	e    Edges
	name string
}{
	{EdgeTop, "top"},
	{EdgeBottom, "bottom"},
	{EdgeLeft, "left"},
	{EdgeRight, "right"},
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf strings.Builder
	for _, n := range edgeNames {
		if e&n.e == 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('|')
		}
		buf.WriteString(n.name)
	}
	return buf.String()
}
