package geom

import (
	"fmt"
	"math"
	"strconv"
)

// SlopeBound is the largest slope magnitude of a line built by
// [Through], padded slightly for rounding.
const SlopeBound = 1.000001

// Form identifies which coordinate of a line is the independent
// variable.
type Form int

const (
	YOfX Form = iota // y = mx + c
	XOfY             // x = my + c
)

func (f Form) String() string {
	switch f {
	case YOfX:
		return "y = mx + c"
	case XOfY:
		return "x = my + c"
	default:
		return "Form(" + strconv.Itoa(int(f)) + ")"
	}
}

// Line is an infinite line. It is always either a [YForm] or an
// [XForm]. The two forms describe the same set of lines; the form
// exists so that the stored slope can be kept within [-1, 1] no
// matter the direction of the line, which avoids the loss of
// precision that comes with slopes approaching infinity.
type Line interface {
	Form() Form

	// Slope returns m.
	Slope() float64

	// Intercept returns c.
	Intercept() float64

	// Point returns the point on the line whose independent coordinate
	// is t.
	Point(t float64) Vec

	String() string

	line()
}

var (
	_ Line = YForm{}
	_ Line = XForm{}
)

// YForm is a line defined by y = M*x + C.
type YForm struct {
	M, C float64
}

func (YForm) Form() Form            { return YOfX }
func (l YForm) Slope() float64      { return l.M }
func (l YForm) Intercept() float64  { return l.C }
func (l YForm) Point(x float64) Vec { return Vec{X: x, Y: l.Y(x)} }
func (YForm) line()                 {}

// Y returns the y coordinate of the line at x.
func (l YForm) Y(x float64) float64 {
	return l.M*x + l.C
}

func (l YForm) String() string {
	return formatLine("y", "x", l.M, l.C)
}

// XForm is a line defined by x = M*y + C.
type XForm struct {
	M, C float64
}

func (XForm) Form() Form            { return XOfY }
func (l XForm) Slope() float64      { return l.M }
func (l XForm) Intercept() float64  { return l.C }
func (l XForm) Point(y float64) Vec { return Vec{X: l.X(y), Y: y} }
func (XForm) line()                 {}

// X returns the x coordinate of the line at y.
func (l XForm) X(y float64) float64 {
	return l.M*y + l.C
}

func (l XForm) String() string {
	return formatLine("x", "y", l.M, l.C)
}

func formatLine(dep, indep string, m, c float64) string {
	sign := '+'
	if math.Signbit(c) {
		sign, c = '-', -c
	}
	return fmt.Sprintf("%v = %v%v %c %v", dep, m, indep, sign, c)
}

// Pairing describes which of a pair of lines are in y = mx + c form.
type Pairing int

const (
	Both Pairing = iota
	First
	Second
	Neither
)

func (p Pairing) String() string {
	switch p {
	case Both:
		return "both"
	case First:
		return "first"
	case Second:
		return "second"
	case Neither:
		return "neither"
	default:
		return "Pairing(" + strconv.Itoa(int(p)) + ")"
	}
}

// Classify reports which of l1 and l2 are in y = mx + c form.
func Classify(l1, l2 Line) Pairing {
	y1, y2 := l1.Form() == YOfX, l2.Form() == YOfX
	switch {
	case y1 && y2:
		return Both
	case y1:
		return First
	case y2:
		return Second
	default:
		return Neither
	}
}

// Parallel reports whether l1 and l2 are parallel. Slopes are compared
// exactly, so lines that are parallel in theory may be reported as
// not parallel due to rounding.
func Parallel(l1, l2 Line) bool {
	switch Classify(l1, l2) {
	case First, Second:
		// A slope of m in one form is a slope of 1/m in the other.
		return l1.Slope()*l2.Slope() == 1
	default:
		return l1.Slope() == l2.Slope()
	}
}

// Through returns the line passing through p1 and p2. The form of the
// line is chosen by the angle between the points so that the slope
// of the returned line is always within [-SlopeBound, SlopeBound].
//
// It returns an error wrapping [ErrDegenerate] if p1 and p2 are the
// same point.
func Through(p1, p2 Vec) (Line, error) {
	if p1.Eq(p2) {
		return nil, fmt.Errorf("line through %v and itself: %w", p1, ErrDegenerate)
	}

	d := p2.Sub(p1)
	if nearHorizontal(d.Angle()) {
		var m float64
		if d.X != 0 {
			m = d.Y / d.X
		}
		return YForm{M: m, C: p1.Y - m*p1.X}, nil
	}

	var m float64
	if d.Y != 0 {
		m = d.X / d.Y
	}
	return XForm{M: m, C: p1.X - m*p1.Y}, nil
}

// nearHorizontal reports whether a direction with angle a is at least
// as close to the x-axis as it is to the y-axis.
func nearHorizontal(a float64) bool {
	return (-QuarterPi < a && a <= QuarterPi) || math.Abs(a) >= 3*QuarterPi
}
