package geom

import (
	"fmt"
	"math"
)

// Polar is a 2D vector in polar form. R is never negative and Angle is
// always within [-Pi, Pi] for values produced by this package.
type Polar struct {
	R, Angle float64
}

// NewPolar returns a Polar with the given length and angle, or an
// error if either is out of range.
func NewPolar(r, angle float64) (Polar, error) {
	if r < 0 {
		return Polar{}, fmt.Errorf("polar length %v: %w", r, ErrNegativeRadius)
	}
	if !(-Pi <= angle && angle <= Pi) {
		return Polar{}, fmt.Errorf("polar angle %v: %w", angle, ErrAngleRange)
	}
	return Polar{R: r, Angle: angle}, nil
}

// Polar converts p to polar form.
func (p Vec) Polar() Polar {
	return Polar{R: p.Len(), Angle: p.Angle()}
}

// Vec converts v to Cartesian form.
func (v Polar) Vec() Vec {
	sin, cos := math.Sincos(v.Angle)
	return Vec{X: v.R * cos, Y: v.R * sin}
}

// Neg returns v pointing in the opposite direction.
func (v Polar) Neg() Polar {
	return v.Rotate(Pi)
}

// Mul scales v by c. A negative c reverses the direction of v.
func (v Polar) Mul(c float64) Polar {
	if c < 0 {
		return v.Neg().Mul(-c)
	}
	v.R *= c
	return v
}

// Rotate returns v rotated counterclockwise by a radians.
func (v Polar) Rotate(a float64) Polar {
	v.Angle = normalizeAngle(v.Angle + a)
	return v
}

// Dot returns the dot product of v and w.
func (v Polar) Dot(w Polar) float64 {
	return v.R * w.R * math.Cos(v.Angle-w.Angle)
}

func (v Polar) String() string {
	return fmt.Sprintf("(%v, %v°)", v.R, v.Angle*180/Pi)
}

// normalizeAngle maps a into [-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	switch {
	case a > Pi:
		a -= TwoPi
	case a < -Pi:
		a += TwoPi
	}
	return a
}
