package shapes

// Fill constructors paint the interior of a shape with a brush. Fills
// always go through the rasterizer.

// FillPath fills a caller-supplied path. Open figures are closed
// implicitly. The path is never modified.
func FillPath(target Bitmap, b Brush, path *Path, opts *DrawingOptions) *Operation {
	op := newFillOperation[float64]("fill path", target, b, opts, nil)
	op.path = path
	if path == nil {
		op.fail(ErrNilPath)
	}
	return op
}

// FillPolygon fills the polygon through points.
func FillPolygon[T Coord](target Bitmap, b Brush, points []Point[T], opts *DrawingOptions) *Operation {
	pts := toFloats(points)
	op := newFillOperation[T]("fill polygon", target, b, opts, func(p *Path) { p.AddPolygon(pts...) })
	if points == nil {
		op.fail(ErrNilPoints)
	}
	return op
}

// FillRectangle fills r.
func FillRectangle[T Coord](target Bitmap, b Brush, r Rect[T], opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newFillOperation[T]("fill rectangle", target, b, opts, func(p *Path) { p.AddRectangle(rf) })
}

// FillEllipse fills the ellipse inscribed in r.
func FillEllipse[T Coord](target Bitmap, b Brush, r Rect[T], opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newFillOperation[T]("fill ellipse", target, b, opts, func(p *Path) { p.AddEllipse(rf) })
}

// FillPie fills a pie slice of the ellipse inscribed in r.
func FillPie[T Coord](target Bitmap, b Brush, r Rect[T], startAngle, sweepAngle float64, opts *DrawingOptions) *Operation {
	rf := r.Float()
	return newFillOperation[T]("fill pie", target, b, opts, func(p *Path) { p.AddPie(rf, startAngle, sweepAngle) })
}

// FillRoundedRectangle fills r with all corners rounded by radius.
func FillRoundedRectangle[T Coord](target Bitmap, b Brush, r Rect[T], radius T, opts *DrawingOptions) *Operation {
	rf := r.Float()
	cf := Corners[T]{radius, radius, radius, radius}.Float()
	return newFillOperation[T]("fill rounded rectangle", target, b, opts, func(p *Path) { p.AddRoundedRectangleCorners(rf, cf) })
}
