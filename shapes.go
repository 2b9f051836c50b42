package shapes

// Stroke constructors. Each accepts a Color32 (a solid one-pixel stroke) or
// a *Pen, integer or floating point coordinates, and optional drawing
// options. Nil options mean DefaultDrawingOptions.

// Line strokes the segment from p1 to p2. Both end points are drawn.
func Line[T Coord](target Bitmap, s Stroke, p1, p2 Point[T], opts *DrawingOptions) *Operation {
	a, b := p1.Float(), p2.Float()
	return newStrokeOperation[T]("line", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawLine(t, a, b, c, o) },
		func(p *Path) { p.AddLine(a, b) })
}

// Lines strokes an open polyline through points. A single point draws one
// dot; an empty slice draws nothing.
func Lines[T Coord](target Bitmap, s Stroke, points []Point[T], opts *DrawingOptions) *Operation {
	pts := toFloats(points)
	op := newStrokeOperation[T]("lines", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawLines(t, pts, c, o) },
		func(p *Path) { p.AddLines(pts...) })
	if points == nil {
		op.fail(ErrNilPoints)
	}
	return op
}

// Beziers strokes a chain of cubic Bézier curves. points must hold 3k+1
// entries: the start point, then two control points and an end point per
// curve.
func Beziers[T Coord](target Bitmap, s Stroke, points []Point[T], opts *DrawingOptions) *Operation {
	pts := toFloats(points)
	op := newStrokeOperation[T]("beziers", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawBeziers(t, pts, c, o) },
		func(p *Path) { _ = p.AddBeziers(pts...) })
	if points == nil {
		op.fail(ErrNilPoints)
	}
	op.fail(checkBezierCount(len(points)))
	return op
}

// Polygon strokes the closed polygon through points, including the edge
// from the last point back to the first.
func Polygon[T Coord](target Bitmap, s Stroke, points []Point[T], opts *DrawingOptions) *Operation {
	pts := toFloats(points)
	op := newStrokeOperation[T]("polygon", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawPolygon(t, pts, c, o) },
		func(p *Path) { p.AddPolygon(pts...) })
	if points == nil {
		op.fail(ErrNilPoints)
	}
	return op
}

// Rectangle strokes the outline of r. The right and bottom edges lie at
// X+Width and Y+Height, so a zero-sized rectangle draws one pixel.
func Rectangle[T Coord](target Bitmap, s Stroke, r Rect[T], opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newStrokeOperation[T]("rectangle", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawRectangle(t, rf, c, o) },
		func(p *Path) { p.AddRectangle(rf) })
}

// Ellipse strokes the ellipse inscribed in r.
func Ellipse[T Coord](target Bitmap, s Stroke, r Rect[T], opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newStrokeOperation[T]("ellipse", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawEllipse(t, rf, c, o) },
		func(p *Path) { p.AddEllipse(rf) })
}

// Arc strokes an arc of the ellipse inscribed in r. Angles are in degrees
// measured clockwise from the positive X axis.
func Arc[T Coord](target Bitmap, s Stroke, r Rect[T], startAngle, sweepAngle float64, opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newStrokeOperation[T]("arc", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawArc(t, rf, startAngle, sweepAngle, c, o) },
		func(p *Path) { p.AddArc(rf, startAngle, sweepAngle) })
}

// Pie strokes the outline of a pie slice of the ellipse inscribed in r.
func Pie[T Coord](target Bitmap, s Stroke, r Rect[T], startAngle, sweepAngle float64, opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newStrokeOperation[T]("pie", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawPie(t, rf, startAngle, sweepAngle, c, o) },
		func(p *Path) { p.AddPie(rf, startAngle, sweepAngle) })
}

// RoundedRectangle strokes r with all corners rounded by radius.
func RoundedRectangle[T Coord](target Bitmap, s Stroke, r Rect[T], radius T, opts *DrawingOptions) *Operation {
	return roundedRectangle("rounded rectangle", target, s, r, Corners[T]{radius, radius, radius, radius}, opts)
}

// RoundedRectangleCorners strokes r with an individual radius per corner.
// Radii are clamped to half of the shorter side.
func RoundedRectangleCorners[T Coord](target Bitmap, s Stroke, r Rect[T], radii Corners[T], opts *DrawingOptions) *Operation {
	return roundedRectangle("rounded rectangle", target, s, r, radii, opts)
}

func roundedRectangle[T Coord](name string, target Bitmap, s Stroke, r Rect[T], radii Corners[T], opts *DrawingOptions) *Operation {
	rf, cf := r.Float(), radii.Float()
	return newStrokeOperation[T](name, target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawRoundedRectangle(t, rf, cf, c, o) },
		func(p *Path) { p.AddRoundedRectangleCorners(rf, cf) })
}

// Outline strokes a caller-supplied path. The path is never modified; a
// transformation in opts is applied to a copy.
func Outline(target Bitmap, s Stroke, path *Path, opts *DrawingOptions) *Operation {
	op := newStrokeOperation[float64]("path", target, s, opts,
		func(d DirectDrawer, t Bitmap, c Color32, o PixelOffset) { d.DrawPath(t, path, c, o) },
		nil)
	op.path = path
	if path == nil {
		op.fail(ErrNilPath)
	}
	return op
}
