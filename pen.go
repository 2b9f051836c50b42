package shapes

// LineJoin specifies the shape of joins between stroked segments.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

// LineCap specifies the shape of open stroke ends.
type LineCap int

const (
	// LineCapFlat ends the stroke exactly at the end point.
	LineCapFlat LineCap = iota
	// LineCapSquare extends the stroke by half the width.
	LineCapSquare
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
)

// DefaultMiterLimit is the miter limit of pens created by NewPen.
const DefaultMiterLimit = 10

// Pen describes how the outline of a shape is stroked.
// A Pen is read-only while an operation using it is in flight and may be
// shared between concurrent operations.
type Pen struct {
	Brush      Brush
	Width      float64
	LineJoin   LineJoin
	StartCap   LineCap
	EndCap     LineCap
	MiterLimit float64
}

// NewPen creates a solid pen with the given color and width.
func NewPen(c Color32, width float64) *Pen {
	return &Pen{
		Brush:      Solid(c),
		Width:      width,
		MiterLimit: DefaultMiterLimit,
	}
}

// NewBrushPen creates a pen that strokes with an arbitrary brush.
func NewBrushPen(b Brush, width float64) *Pen {
	return &Pen{
		Brush:      b,
		Width:      width,
		MiterLimit: DefaultMiterLimit,
	}
}

// Stroke is how a shape outline is drawn: either a plain Color32, which
// means a solid one-pixel stroke, or a *Pen.
type Stroke interface {
	stroke() *Pen
}

func (c Color32) stroke() *Pen { return NewPen(c, 1) }

func (p *Pen) stroke() *Pen { return p }
