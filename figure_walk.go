package shapes

import (
	"image"

	"github.com/gogpu/shapes/internal/flatten"
	"github.com/gogpu/shapes/internal/hairline"
)

// polyline flattens a figure into hairline vertices. A closed figure ends
// with its start point.
func (f *Figure) polyline(dst []hairline.Point) []hairline.Point {
	if f.IsEmpty() {
		return dst
	}
	start := f.Start()
	dst = append(dst, hairline.Point{X: start.X, Y: start.Y})

	var tmp []flatten.Point
	for _, s := range f.Segments {
		switch s.Kind {
		case SegmentLine:
			dst = append(dst, hairline.Point{X: s.P[1].X, Y: s.P[1].Y})
		case SegmentCubic:
			tmp = flatten.Cubic(tmp[:0],
				flatten.Point{X: s.P[0].X, Y: s.P[0].Y},
				flatten.Point{X: s.P[1].X, Y: s.P[1].Y},
				flatten.Point{X: s.P[2].X, Y: s.P[2].Y},
				flatten.Point{X: s.P[3].X, Y: s.P[3].Y},
				flatten.Tolerance)
			for _, p := range tmp {
				dst = append(dst, hairline.Point{X: p.X, Y: p.Y})
			}
		}
	}
	if f.Closed {
		dst = append(dst, hairline.Point{X: start.X, Y: start.Y})
	}
	return dst
}

// walkHairline plots every pixel of a one-pixel-wide stroke of the figures.
func walkHairline(figures []*Figure, offset PixelOffset, clip image.Rectangle, plot func(x, y int)) {
	var pts []hairline.Point
	for _, f := range figures {
		pts = f.polyline(pts[:0])
		hairline.Polyline(pts, offset == PixelOffsetHalf, clip, plot)
	}
}
