package geom

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned rectangle in a y-up coordinate system. Left
// should not exceed Right and Bottom should not exceed Top, but this
// is not enforced.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Rt is shorthand for Rect{Left: left, Right: right, Top: top, Bottom: bottom}.
func Rt(left, right, top, bottom float64) Rect {
	return Rect{Left: left, Right: right, Top: top, Bottom: bottom}
}

// Around returns a rectangle centered at center extending half.X to
// either side horizontally and half.Y to either side vertically.
func Around(center, half Vec) Rect {
	return Rect{
		Left:   center.X - half.X,
		Right:  center.X + half.X,
		Top:    center.Y + half.Y,
		Bottom: center.Y - half.Y,
	}
}

func (r Rect) Dx() float64 { return r.Right - r.Left }
func (r Rect) Dy() float64 { return r.Top - r.Bottom }

func (r Rect) Center() Vec {
	return Vec{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p is strictly inside of r. Points on the
// boundary are not contained.
func (r Rect) Contains(p Vec) bool {
	return r.Left < p.X && p.X < r.Right &&
		r.Bottom < p.Y && p.Y < r.Top
}

// Edge returns the infinite line along the given edge of r. Top and
// bottom edges are returned as a [YForm] and left and right edges as
// an [XForm], in both cases with a slope of zero. It panics if e is
// not exactly one edge.
func (r Rect) Edge(e Edges) Line {
	switch e {
	case EdgeTop:
		return YForm{C: r.Top}
	case EdgeBottom:
		return YForm{C: r.Bottom}
	case EdgeLeft:
		return XForm{C: r.Left}
	case EdgeRight:
		return XForm{C: r.Right}
	default:
		panic(fmt.Errorf("not a single edge: %v", e))
	}
}

// Edges yields each edge of r along with the line that it lies on.
func (r Rect) Edges() iter.Seq2[Edges, Line] {
	return func(yield func(Edges, Line) bool) {
		for _, e := range [...]Edges{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
			if !yield(e, r.Edge(e)) {
				return
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v]x[%v, %v]", r.Left, r.Right, r.Bottom, r.Top)
}
