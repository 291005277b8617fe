package contour

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContour matches a *NoContourFoundError.
	ErrNoContour = errors.New("no contour found")

	// ErrInsufficientPoints matches an *InsufficientPointsError.
	ErrInsufficientPoints = errors.New("insufficient contour points")

	// ErrDegenerateVector matches a *DegenerateVectorError.
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrInvalidStep is returned by Approximate for a step below 1.
	ErrInvalidStep = errors.New("sampling step must be at least 1")
)

// NoContourFoundError is returned by Trace when no pixel of the grid passes
// the threshold. Retrying with the same input cannot succeed.
type NoContourFoundError struct {
	Width     int
	Height    int
	Threshold string
}

func (e *NoContourFoundError) Error() string {
	return fmt.Sprintf("no contour found: no pixel of the %dx%d image reaches threshold %s",
		e.Width, e.Height, e.Threshold)
}

func (e *NoContourFoundError) Unwrap() error { return ErrNoContour }

// InsufficientPointsError is returned by Approximate when the contour has
// fewer than 2*Step points. A smaller step may succeed.
type InsufficientPointsError struct {
	Points int
	Step   int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient contour points: %d points, need at least %d for step %d",
		e.Points, 2*e.Step, e.Step)
}

func (e *InsufficientPointsError) Unwrap() error { return ErrInsufficientPoints }

// DegenerateVectorError reports a zero-length edge. Its direction is
// undefined; the geometry helpers treat its angle as 0.
type DegenerateVectorError struct {
	Index int
	At    Point
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("degenerate vector: edge %d has zero length at (%d, %d)", e.Index, e.At.X, e.At.Y)
}

func (e *DegenerateVectorError) Unwrap() error { return ErrDegenerateVector }
