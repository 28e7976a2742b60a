package geom

import "errors"

var (
	// ErrDegenerate indicates that a line was requested through two
	// coincident points, which do not determine a direction.
	ErrDegenerate = errors.New("degenerate input")

	// ErrNoIntersection indicates that a line and a circle do not meet.
	ErrNoIntersection = errors.New("no intersection")

	// ErrUndefinedSlope indicates that a point was compared against a
	// vertical line stored as x = my + c, which has no height at a
	// given x.
	ErrUndefinedSlope = errors.New("undefined slope division")

	// ErrNegativeRadius indicates a polar vector with a negative
	// length.
	ErrNegativeRadius = errors.New("negative radius")

	// ErrAngleRange indicates a polar vector with an angle outside of
	// [-Pi, Pi].
	ErrAngleRange = errors.New("angle out of range")
)
