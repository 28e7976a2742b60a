package geom

import "fmt"

// Above reports whether p lies strictly above l, meaning that p.Y is
// greater than the height of l at p.X.
//
// If l is an [XForm] with a slope of zero, it is vertical and has no
// height at p.X, so an error wrapping [ErrUndefinedSlope] is
// returned.
func Above(p Vec, l Line) (bool, error) {
	y, err := heightAt(l, p.X)
	if err != nil {
		return false, err
	}
	return p.Y > y, nil
}

// Below reports whether p lies strictly below l. See [Above].
func Below(p Vec, l Line) (bool, error) {
	y, err := heightAt(l, p.X)
	if err != nil {
		return false, err
	}
	return p.Y < y, nil
}

// heightAt returns the y coordinate of l at x.
func heightAt(l Line, x float64) (float64, error) {
	switch l := l.(type) {
	case YForm:
		return l.Y(x), nil
	case XForm:
		if l.M == 0 {
			return 0, fmt.Errorf("height of %v at x = %v: %w", l, x, ErrUndefinedSlope)
		}
		return (x - l.C) / l.M, nil
	default:
		panic(fmt.Errorf("unexpected line type %T", l))
	}
}
