package shapes

import (
	"math"
	"sync/atomic"
)

// SegmentKind identifies the type of a path segment.
type SegmentKind uint8

const (
	// SegmentLine is a straight line from P[0] to P[1].
	SegmentLine SegmentKind = iota
	// SegmentCubic is a cubic Bézier curve from P[0] to P[3] with
	// control points P[1] and P[2].
	SegmentCubic
)

// Segment is a line or a cubic Bézier curve.
type Segment struct {
	Kind SegmentKind
	P    [4]PointF
}

// LineSegment creates a line segment.
func LineSegment(p0, p1 PointF) Segment {
	return Segment{Kind: SegmentLine, P: [4]PointF{p0, p1}}
}

// CubicSegment creates a cubic Bézier segment.
func CubicSegment(p0, p1, p2, p3 PointF) Segment {
	return Segment{Kind: SegmentCubic, P: [4]PointF{p0, p1, p2, p3}}
}

// Start returns the first point of the segment.
func (s Segment) Start() PointF { return s.P[0] }

// End returns the last point of the segment.
func (s Segment) End() PointF {
	if s.Kind == SegmentLine {
		return s.P[1]
	}
	return s.P[3]
}

// Points returns the defining points: 2 for lines, 4 for cubics.
func (s Segment) Points() []PointF {
	if s.Kind == SegmentLine {
		return s.P[:2]
	}
	return s.P[:4]
}

func (s Segment) transform(m Matrix) Segment {
	for i := range s.Points() {
		s.P[i] = m.TransformPoint(s.P[i])
	}
	return s
}

// Figure is a subpath: a connected run of segments that is either open
// or closed. A closed figure is implicitly joined from its last point back
// to its first point.
type Figure struct {
	Closed   bool
	Segments []Segment
}

// IsEmpty reports whether the figure has no segments.
func (f *Figure) IsEmpty() bool {
	return len(f.Segments) == 0
}

// Start returns the first point of the figure.
func (f *Figure) Start() PointF {
	if len(f.Segments) == 0 {
		return PointF{}
	}
	return f.Segments[0].Start()
}

// End returns the last point of the figure.
func (f *Figure) End() PointF {
	if len(f.Segments) == 0 {
		return PointF{}
	}
	return f.Segments[len(f.Segments)-1].End()
}

var pathIDs atomic.Uint64

// Path represents a vector path: an ordered collection of figures.
//
// A Path is owned by its creator. Drawing never mutates a Path; when a
// transformation is requested a transformed copy is rendered instead.
type Path struct {
	figures       []*Figure
	open          bool // last figure accepts more segments
	preferCaching bool
	id            uint64
	version       uint64
}

// NewPath creates a new empty path that prefers caching.
func NewPath() *Path {
	return &Path{
		preferCaching: true,
		id:            pathIDs.Add(1),
	}
}

// newScratchPath creates a path for a single internal draw call.
func newScratchPath() *Path {
	p := NewPath()
	p.preferCaching = false
	return p
}

// PreferCaching reports whether rasterizers may cache the rendered region
// of this path between calls.
func (p *Path) PreferCaching() bool {
	return p.preferCaching
}

// SetPreferCaching sets the caching hint.
func (p *Path) SetPreferCaching(v bool) {
	p.preferCaching = v
}

// ID returns an identifier that is unique among all paths of the process.
func (p *Path) ID() uint64 {
	return p.id
}

// Version changes every time the path geometry changes.
func (p *Path) Version() uint64 {
	return p.version
}

// Figures returns the figures of the path. The slice must not be modified.
func (p *Path) Figures() []*Figure {
	return p.figures
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	for _, f := range p.figures {
		if !f.IsEmpty() {
			return false
		}
	}
	return true
}

// StartFigure ends the current figure; the next segment starts a new one.
func (p *Path) StartFigure() *Path {
	p.open = false
	return p
}

// CloseFigure closes the current figure and ends it.
func (p *Path) CloseFigure() *Path {
	if p.open && len(p.figures) > 0 {
		p.figures[len(p.figures)-1].Closed = true
		p.version++
	}
	p.open = false
	return p
}

// addSegments appends segments to the current figure, starting a new one
// when none is open.
func (p *Path) addSegments(segs ...Segment) {
	if len(segs) == 0 {
		return
	}
	if !p.open || len(p.figures) == 0 {
		p.figures = append(p.figures, &Figure{})
		p.open = true
	}
	f := p.figures[len(p.figures)-1]
	f.Segments = append(f.Segments, segs...)
	p.version++
}

// addFigure appends a complete figure.
func (p *Path) addFigure(f Figure) {
	if len(f.Segments) == 0 {
		return
	}
	p.figures = append(p.figures, &f)
	p.open = false
	p.version++
}

// AddPath appends copies of all figures of other.
func (p *Path) AddPath(other *Path) *Path {
	if other == nil {
		return p
	}
	for _, f := range other.figures {
		p.addFigure(Figure{Closed: f.Closed, Segments: append([]Segment(nil), f.Segments...)})
	}
	return p
}

// Bounds returns the bounding box of all segment points, including
// Bézier control points. An empty path has zero bounds.
func (p *Path) Bounds() RectF {
	b := RectF{X: math.NaN()}
	for _, f := range p.figures {
		for _, s := range f.Segments {
			for _, pt := range s.Points() {
				unionBounds(&b, pt)
			}
		}
	}
	if math.IsNaN(b.X) {
		return RectF{}
	}
	return b
}

// Transform returns the path transformed by m. The identity matrix returns
// p itself; any other matrix returns a new path that does not prefer
// caching, because transformed geometry is rarely drawn twice.
func (p *Path) Transform(m Matrix) *Path {
	if m.IsIdentity() {
		return p
	}
	result := newScratchPath()
	result.figures = make([]*Figure, len(p.figures))
	for i, f := range p.figures {
		segs := make([]Segment, len(f.Segments))
		for j, s := range f.Segments {
			segs[j] = s.transform(m)
		}
		result.figures[i] = &Figure{Closed: f.Closed, Segments: segs}
	}
	return result
}

// Clone creates a deep copy of the path with a new identity.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.preferCaching = p.preferCaching
	result.AddPath(p)
	result.open = p.open
	return result
}
