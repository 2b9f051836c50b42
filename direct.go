package shapes

import "image"

// DirectDrawer writes one-pixel-wide primitives straight into a bitmap,
// without building a Path. Calls are synchronous and never cancellable.
//
// The offset selects how floating point coordinates map to pixels; the
// shape constructors pass PixelOffsetNone for integer coordinates.
type DirectDrawer interface {
	DrawLine(target Bitmap, p1, p2 PointF, c Color32, offset PixelOffset)
	DrawLines(target Bitmap, points []PointF, c Color32, offset PixelOffset)
	DrawBeziers(target Bitmap, points []PointF, c Color32, offset PixelOffset)
	DrawPolygon(target Bitmap, points []PointF, c Color32, offset PixelOffset)
	DrawRectangle(target Bitmap, r RectF, c Color32, offset PixelOffset)
	DrawEllipse(target Bitmap, r RectF, c Color32, offset PixelOffset)
	DrawArc(target Bitmap, r RectF, startAngle, sweepAngle float64, c Color32, offset PixelOffset)
	DrawPie(target Bitmap, r RectF, startAngle, sweepAngle float64, c Color32, offset PixelOffset)
	DrawRoundedRectangle(target Bitmap, r RectF, radii Corners[float64], c Color32, offset PixelOffset)
	DrawPath(target Bitmap, path *Path, c Color32, offset PixelOffset)
}

// DefaultDirectDrawer returns the built-in DirectDrawer. It walks the same
// geometry as Path, so its pixels match a rasterized one-pixel stroke.
func DefaultDirectDrawer() DirectDrawer {
	return directDrawer{}
}

type directDrawer struct{}

func (directDrawer) draw(target Bitmap, c Color32, offset PixelOffset, figures ...*Figure) {
	clip := image.Rect(0, 0, target.Width(), target.Height())
	walkHairline(figures, offset, clip, func(x, y int) {
		target.SetPixel(x, y, c)
	})
}

func (d directDrawer) DrawLine(target Bitmap, p1, p2 PointF, c Color32, offset PixelOffset) {
	f := lineFigure(p1, p2)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawLines(target Bitmap, points []PointF, c Color32, offset PixelOffset) {
	f := linesFigure(points)
	d.draw(target, c, offset, &f)
}

// DrawBeziers ignores point counts other than 3k+1.
func (d directDrawer) DrawBeziers(target Bitmap, points []PointF, c Color32, offset PixelOffset) {
	f, err := beziersFigure(points)
	if err != nil {
		return
	}
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawPolygon(target Bitmap, points []PointF, c Color32, offset PixelOffset) {
	f := polygonFigure(points)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawRectangle(target Bitmap, r RectF, c Color32, offset PixelOffset) {
	f := rectangleFigure(r)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawEllipse(target Bitmap, r RectF, c Color32, offset PixelOffset) {
	f := ellipseFigure(r)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawArc(target Bitmap, r RectF, startAngle, sweepAngle float64, c Color32, offset PixelOffset) {
	f := arcFigure(r, startAngle, sweepAngle)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawPie(target Bitmap, r RectF, startAngle, sweepAngle float64, c Color32, offset PixelOffset) {
	f := pieFigure(r, startAngle, sweepAngle)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawRoundedRectangle(target Bitmap, r RectF, radii Corners[float64], c Color32, offset PixelOffset) {
	f := roundedRectangleFigure(r, radii)
	d.draw(target, c, offset, &f)
}

func (d directDrawer) DrawPath(target Bitmap, path *Path, c Color32, offset PixelOffset) {
	d.draw(target, c, offset, path.Figures()...)
}
