package shapes

import (
	"fmt"
	"math"
)

// kappa is the control point distance for a quarter circle with cubic Béziers.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Geometry builders shared by Path and the direct drawer. Both lanes walk
// the same figures, which keeps their pixel output identical.

func lineFigure(p1, p2 PointF) Figure {
	return Figure{Segments: []Segment{LineSegment(p1, p2)}}
}

// linesFigure chains consecutive points. A single point yields a
// zero-length segment.
func linesFigure(points []PointF) Figure {
	switch len(points) {
	case 0:
		return Figure{}
	case 1:
		return lineFigure(points[0], points[0])
	}
	segs := make([]Segment, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs[i-1] = LineSegment(points[i-1], points[i])
	}
	return Figure{Segments: segs}
}

func checkBezierCount(n int) error {
	if n != 0 && (n < 4 || n%3 != 1) {
		return fmt.Errorf("%w: got %d points", ErrBezierPointCount, n)
	}
	return nil
}

func beziersFigure(points []PointF) (Figure, error) {
	if err := checkBezierCount(len(points)); err != nil {
		return Figure{}, err
	}
	if len(points) == 0 {
		return Figure{}, nil
	}
	segs := make([]Segment, 0, len(points)/3)
	for i := 0; i+3 < len(points); i += 3 {
		segs = append(segs, CubicSegment(points[i], points[i+1], points[i+2], points[i+3]))
	}
	return Figure{Segments: segs}, nil
}

// polygonFigure is closed; the edge from the last point back to the first
// is implied by Closed.
func polygonFigure(points []PointF) Figure {
	f := linesFigure(points)
	f.Closed = len(f.Segments) > 0
	return f
}

func rectangleFigure(r RectF) Figure {
	r = normalizeRect(r)
	tl := PointF{X: r.X, Y: r.Y}
	tr := PointF{X: r.Right(), Y: r.Y}
	br := PointF{X: r.Right(), Y: r.Bottom()}
	bl := PointF{X: r.X, Y: r.Bottom()}
	return Figure{
		Closed:   true,
		Segments: []Segment{LineSegment(tl, tr), LineSegment(tr, br), LineSegment(br, bl)},
	}
}

func ellipseFigure(r RectF) Figure {
	r = normalizeRect(r)
	rx, ry := r.Width/2, r.Height/2
	cx, cy := r.X+rx, r.Y+ry
	ox, oy := rx*kappa, ry*kappa

	return Figure{
		Closed: true,
		Segments: []Segment{
			CubicSegment(PointF{X: cx + rx, Y: cy}, PointF{X: cx + rx, Y: cy + oy}, PointF{X: cx + ox, Y: cy + ry}, PointF{X: cx, Y: cy + ry}),
			CubicSegment(PointF{X: cx, Y: cy + ry}, PointF{X: cx - ox, Y: cy + ry}, PointF{X: cx - rx, Y: cy + oy}, PointF{X: cx - rx, Y: cy}),
			CubicSegment(PointF{X: cx - rx, Y: cy}, PointF{X: cx - rx, Y: cy - oy}, PointF{X: cx - ox, Y: cy - ry}, PointF{X: cx, Y: cy - ry}),
			CubicSegment(PointF{X: cx, Y: cy - ry}, PointF{X: cx + ox, Y: cy - ry}, PointF{X: cx + rx, Y: cy - oy}, PointF{X: cx + rx, Y: cy}),
		},
	}
}

// ellipseParam converts a polar angle (radians) to the parametric angle of
// the ellipse point lying in that direction.
func ellipseParam(rx, ry, a float64) float64 {
	if rx == 0 || ry == 0 {
		return a
	}
	t := math.Atan2(rx*math.Sin(a), ry*math.Cos(a))
	d := math.Remainder(t-a, 2*math.Pi)
	return a + d
}

// arcSegments approximates the arc of the ellipse inscribed in r from
// startAngle sweeping sweepAngle (degrees) with at most 90 degrees per cubic.
func arcSegments(r RectF, startAngle, sweepAngle float64) []Segment {
	r = normalizeRect(r)
	rx, ry := r.Width/2, r.Height/2
	cx, cy := r.X+rx, r.Y+ry
	sweepAngle = max(min(sweepAngle, 360), -360)

	point := func(t float64) PointF {
		return PointF{X: cx + rx*math.Cos(t), Y: cy + ry*math.Sin(t)}
	}

	a0 := startAngle * math.Pi / 180
	if sweepAngle == 0 {
		p := point(ellipseParam(rx, ry, a0))
		return []Segment{LineSegment(p, p)}
	}

	n := int(math.Ceil(math.Abs(sweepAngle) / 90))
	step := sweepAngle * math.Pi / 180 / float64(n)
	segs := make([]Segment, n)
	t1 := ellipseParam(rx, ry, a0)
	for i := range n {
		t2 := ellipseParam(rx, ry, a0+float64(i+1)*step)
		alpha := 4.0 / 3.0 * math.Tan((t2-t1)/4)
		p0, p3 := point(t1), point(t2)
		s1, c1 := math.Sincos(t1)
		s2, c2 := math.Sincos(t2)
		segs[i] = CubicSegment(
			p0,
			PointF{X: p0.X - alpha*rx*s1, Y: p0.Y + alpha*ry*c1},
			PointF{X: p3.X + alpha*rx*s2, Y: p3.Y - alpha*ry*c2},
			p3,
		)
		t1 = t2
	}
	return segs
}

func arcFigure(r RectF, startAngle, sweepAngle float64) Figure {
	return Figure{Segments: arcSegments(r, startAngle, sweepAngle)}
}

func pieFigure(r RectF, startAngle, sweepAngle float64) Figure {
	r = normalizeRect(r)
	center := PointF{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
	arc := arcSegments(r, startAngle, sweepAngle)
	segs := make([]Segment, 0, len(arc)+1)
	segs = append(segs, LineSegment(center, arc[0].Start()))
	segs = append(segs, arc...)
	return Figure{Closed: true, Segments: segs}
}

// clampRadii limits every corner radius to half of the shorter side.
func clampRadii(r RectF, c Corners[float64]) Corners[float64] {
	limit := math.Min(r.Width, r.Height) / 2
	clamp := func(v float64) float64 {
		return min(max(v, 0), limit)
	}
	return Corners[float64]{
		TopLeft:     clamp(c.TopLeft),
		TopRight:    clamp(c.TopRight),
		BottomRight: clamp(c.BottomRight),
		BottomLeft:  clamp(c.BottomLeft),
	}
}

func roundedRectangleFigure(r RectF, radii Corners[float64]) Figure {
	r = normalizeRect(r)
	c := clampRadii(r, radii)
	if c == (Corners[float64]{}) {
		return rectangleFigure(r)
	}

	var segs []Segment
	line := func(p, q PointF) {
		if p != q {
			segs = append(segs, LineSegment(p, q))
		}
	}
	corner := func(cx, cy, radius, start float64) {
		if radius > 0 {
			segs = append(segs, arcSegments(RectF{X: cx - radius, Y: cy - radius, Width: 2 * radius, Height: 2 * radius}, start, 90)...)
		}
	}

	x, y, right, bottom := r.X, r.Y, r.Right(), r.Bottom()
	line(PointF{X: x + c.TopLeft, Y: y}, PointF{X: right - c.TopRight, Y: y})
	corner(right-c.TopRight, y+c.TopRight, c.TopRight, 270)
	line(PointF{X: right, Y: y + c.TopRight}, PointF{X: right, Y: bottom - c.BottomRight})
	corner(right-c.BottomRight, bottom-c.BottomRight, c.BottomRight, 0)
	line(PointF{X: right - c.BottomRight, Y: bottom}, PointF{X: x + c.BottomLeft, Y: bottom})
	corner(x+c.BottomLeft, bottom-c.BottomLeft, c.BottomLeft, 90)
	line(PointF{X: x, Y: bottom - c.BottomLeft}, PointF{X: x, Y: y + c.TopLeft})
	corner(x+c.TopLeft, y+c.TopLeft, c.TopLeft, 180)

	return Figure{Closed: true, Segments: segs}
}

// AddLine appends a line to the current figure.
func (p *Path) AddLine(p1, p2 PointF) *Path {
	p.continueFigure(lineFigure(p1, p2).Segments)
	return p
}

// AddLines appends a polyline to the current figure.
func (p *Path) AddLines(points ...PointF) *Path {
	p.continueFigure(linesFigure(points).Segments)
	return p
}

// AddBeziers appends a chain of cubic Bézier curves to the current figure.
// The number of points must be 3k+1: a start point followed by three
// points (two control points and an end point) per curve.
func (p *Path) AddBeziers(points ...PointF) error {
	f, err := beziersFigure(points)
	if err != nil {
		return err
	}
	p.continueFigure(f.Segments)
	return nil
}

// AddArc appends an elliptical arc to the current figure.
func (p *Path) AddArc(r RectF, startAngle, sweepAngle float64) *Path {
	p.continueFigure(arcSegments(r, startAngle, sweepAngle))
	return p
}

// AddPolygon adds a closed figure through the points.
func (p *Path) AddPolygon(points ...PointF) *Path {
	p.addFigure(polygonFigure(points))
	return p
}

// AddRectangle adds a closed rectangle. Right and bottom edges are inclusive.
func (p *Path) AddRectangle(r RectF) *Path {
	p.addFigure(rectangleFigure(r))
	return p
}

// AddEllipse adds the closed ellipse inscribed in r.
func (p *Path) AddEllipse(r RectF) *Path {
	p.addFigure(ellipseFigure(r))
	return p
}

// AddPie adds a closed pie slice of the ellipse inscribed in r.
func (p *Path) AddPie(r RectF, startAngle, sweepAngle float64) *Path {
	p.addFigure(pieFigure(r, startAngle, sweepAngle))
	return p
}

// AddRoundedRectangle adds a rectangle whose corners all have the same radius.
func (p *Path) AddRoundedRectangle(r RectF, radius float64) *Path {
	return p.AddRoundedRectangleCorners(r, Corners[float64]{radius, radius, radius, radius})
}

// AddRoundedRectangleCorners adds a rectangle with an individual radius per
// corner. Radii are clamped to half of the shorter side.
func (p *Path) AddRoundedRectangleCorners(r RectF, radii Corners[float64]) *Path {
	p.addFigure(roundedRectangleFigure(r, radii))
	return p
}

// continueFigure appends segments to the open figure, joining it to the
// new start point with a line when the two do not meet.
func (p *Path) continueFigure(segs []Segment) {
	if len(segs) == 0 {
		return
	}
	if p.open && len(p.figures) > 0 {
		if end := p.figures[len(p.figures)-1].End(); end != segs[0].Start() {
			p.addSegments(LineSegment(end, segs[0].Start()))
		}
	}
	p.addSegments(segs...)
}
