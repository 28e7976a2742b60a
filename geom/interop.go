package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// FromImagePoint converts an image.Point to a Vec.
func FromImagePoint(p image.Point) Vec {
	return Pt(p.X, p.Y)
}

// ImagePoint converts p to an image.Point, rounding each coordinate
// to the nearest integer.
func (p Vec) ImagePoint() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func FromF64(v f64.Vec2) Vec {
	return Vec{X: v[0], Y: v[1]}
}

func (p Vec) F64() f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}

// FromFixed converts a 26.6 fixed-point point to a Vec.
func FromFixed(p fixed.Point26_6) Vec {
	return Vec{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Fixed converts p to 26.6 fixed-point, rounding to the nearest 1/64.
func (p Vec) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}
