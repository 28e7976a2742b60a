package geom

import (
	"math"
	"strconv"
)

// Vec is a 2D Cartesian vector. It can represent either an absolute
// point or a displacement.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Pt returns a Vec from coordinates of any numeric type.
func Pt[T Scalar](x, y T) Vec {
	return Vec{X: float64(x), Y: float64(y)}
}

func (p Vec) Add(q Vec) Vec { return Vec{p.X + q.X, p.Y + q.Y} }
func (p Vec) Sub(q Vec) Vec { return Vec{p.X - q.X, p.Y - q.Y} }
func (p Vec) Neg() Vec      { return Vec{-p.X, -p.Y} }

func (p Vec) Mul(c float64) Vec { return Vec{p.X * c, p.Y * c} }
func (p Vec) Div(c float64) Vec { return Vec{p.X / c, p.Y / c} }

// Dot returns the dot product of p and q.
func (p Vec) Dot(q Vec) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the magnitude of p.
func (p Vec) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle between p and the positive x-axis in the
// range [-Pi, Pi].
func (p Vec) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleTo returns the angle of the direction from p to q.
func (p Vec) AngleTo(q Vec) float64 {
	return q.Sub(p).Angle()
}

// Dist returns the distance between p and q.
func (p Vec) Dist(q Vec) float64 {
	return q.Sub(p).Len()
}

// Eq reports whether p and q are exactly equal.
func (p Vec) Eq(q Vec) bool {
	return p == q
}

func (p Vec) IsZero() bool {
	return p == Vec{}
}

func (p Vec) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
