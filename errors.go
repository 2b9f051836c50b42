package shapes

import "errors"

// Argument errors returned by shape constructors and Path builders.
var (
	// ErrNilTarget is returned when the target bitmap is nil.
	ErrNilTarget = errors.New("shapes: nil target bitmap")

	// ErrNilPen is returned when a nil *Pen is used as a stroke.
	ErrNilPen = errors.New("shapes: nil pen")

	// ErrNilBrush is returned when a nil brush is passed to a fill operation.
	ErrNilBrush = errors.New("shapes: nil brush")

	// ErrNilPath is returned when a nil path is drawn or filled.
	ErrNilPath = errors.New("shapes: nil path")

	// ErrPenWidth is returned when a pen width is not a positive finite number.
	ErrPenWidth = errors.New("shapes: pen width must be positive")

	// ErrNilPoints is returned when a nil point slice is passed.
	ErrNilPoints = errors.New("shapes: nil points")

	// ErrBezierPointCount is returned when a Bézier chain does not have 3k+1 points.
	ErrBezierPointCount = errors.New("shapes: bezier point count must be 3k+1")

	// ErrOverflow is returned when a transformed integer-coordinate shape
	// leaves the representable coordinate range.
	ErrOverflow = errors.New("shapes: transformed coordinates overflow")
)
