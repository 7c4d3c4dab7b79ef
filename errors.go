package shapes

import "errors"

var (
	// ErrZeroLengthReference is returned when a direction has to be derived from
	// a line whose endpoints coincide. For cubes this means all three corners
	// collapsed onto one point.
	ErrZeroLengthReference = errors.New("shapes: reference line has zero length")

	// ErrNegativeRadius is returned when drawing a circle with a radius below zero.
	ErrNegativeRadius = errors.New("shapes: negative radius")

	// ErrTooFewCorners is returned for polygons with fewer than three corners.
	ErrTooFewCorners = errors.New("shapes: polygon needs at least 3 corners")

	// ErrNonPositiveLength is returned for polygons whose edge length is not positive.
	ErrNonPositiveLength = errors.New("shapes: edge length must be positive")
)
