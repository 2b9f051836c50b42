// Package hairline walks one-pixel-wide polylines with integer line
// stepping. The same walk backs direct drawing and the thin-stroke lane of
// the rasterizer, so both produce the same pixels.
package hairline

import (
	"image"
	"math"
)

// limit keeps rounded coordinates and the products of their differences
// within int64.
const limit = 1 << 28

// Point is a polyline vertex.
type Point struct {
	X, Y float64
}

// Round converts a coordinate to a pixel index. With half set, pixel
// centers lie at .5 and the coordinate is floored; otherwise pixel centers
// lie on integers and the coordinate is rounded half up.
func Round(v float64, half bool) int {
	if !half {
		v += 0.5
	}
	v = math.Floor(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}

// Polyline plots every pixel of the polyline through points. Consecutive
// vertices that round to the same pixel are merged; a polyline whose
// vertices all round to one pixel plots that pixel once. Pixels outside
// clip are never passed to plot.
//
// Segments are clipped in float space to clip grown by a margin before
// rounding, so far away end points keep the slope of the segment.
func Polyline(points []Point, half bool, clip image.Rectangle, plot func(x, y int)) {
	if len(points) == 0 {
		return
	}

	window := [4]float64{
		float64(clip.Min.X - margin), float64(clip.Min.Y - margin),
		float64(clip.Max.X + margin), float64(clip.Max.Y + margin),
	}
	drawn := false
	for i := 1; i < len(points); i++ {
		a, b, ok := clipSegment(points[i-1], points[i], window)
		if !ok {
			continue
		}
		x0, y0 := Round(a.X, half), Round(a.Y, half)
		x1, y1 := Round(b.X, half), Round(b.Y, half)
		if x1 == x0 && y1 == y0 {
			continue
		}
		Line(x0, y0, x1, y1, clip, plot)
		drawn = true
	}
	if drawn {
		return
	}
	x, y := Round(points[0].X, half), Round(points[0].Y, half)
	if (image.Point{X: x, Y: y}).In(clip) {
		plot(x, y)
	}
}

// margin is how far beyond the clip segments are kept, in pixels.
const margin = 2

// clipSegment clips the segment p-q to the window {minX, minY, maxX, maxY}
// with the Liang-Barsky algorithm. It reports false when nothing of the
// segment lies inside.
func clipSegment(p, q Point, window [4]float64) (Point, Point, bool) {
	dx, dy := q.X-p.X, q.Y-p.Y
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return p, q, false
	}

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, p.X - window[0]},
		{dx, window[2] - p.X},
		{-dy, p.Y - window[1]},
		{dy, window[3] - p.Y},
	}
	for _, e := range edges {
		pk, qk := e[0], e[1]
		if pk == 0 {
			if qk < 0 {
				return p, q, false
			}
			continue
		}
		r := qk / pk
		if pk < 0 {
			if r > t1 {
				return p, q, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return p, q, false
			}
			t1 = min(t1, r)
		}
	}

	a, b := p, q
	if t0 > 0 {
		a = Point{X: p.X + t0*dx, Y: p.Y + t0*dy}
	}
	if t1 < 1 {
		b = Point{X: p.X + t1*dx, Y: p.Y + t1*dy}
	}
	return a, b, true
}

// Line plots the pixels of the segment (x0,y0)-(x1,y1), endpoints
// included. Each step along the major axis plots one pixel; the minor
// coordinate is the exact rounded position, ties rounding up. Only steps
// inside clip are visited, so the cost is bounded by the clip size.
func Line(x0, y0, x1, y1 int, clip image.Rectangle, plot func(x, y int)) {
	// both ends on the same outer side: nothing visible
	if (x0 < clip.Min.X && x1 < clip.Min.X) || (x0 >= clip.Max.X && x1 >= clip.Max.X) ||
		(y0 < clip.Min.Y && y1 < clip.Min.Y) || (y0 >= clip.Max.Y && y1 >= clip.Max.Y) {
		return
	}

	dx, dy := x1-x0, y1-y0
	if abs(dx) >= abs(dy) {
		walk(x0, y0, dx, dy, clip.Min.X, clip.Max.X, func(x, y int) {
			if y >= clip.Min.Y && y < clip.Max.Y {
				plot(x, y)
			}
		})
		return
	}
	walk(y0, x0, dy, dx, clip.Min.Y, clip.Max.Y, func(y, x int) {
		if x >= clip.Min.X && x < clip.Max.X {
			plot(x, y)
		}
	})
}

// walk steps the major coordinate u from u0 to u0+du, restricted to
// [lo, hi), and plots (u, v) with v interpolated along dv.
func walk(u0, v0, du, dv, lo, hi int, plot func(u, v int)) {
	n := abs(du)
	if n == 0 {
		if u0 >= lo && u0 < hi {
			plot(u0, v0)
		}
		return
	}

	su := 1
	if du < 0 {
		su = -1
	}
	kmin, kmax := 0, n
	if su > 0 {
		kmin, kmax = max(kmin, lo-u0), min(kmax, hi-1-u0)
	} else {
		kmin, kmax = max(kmin, u0-(hi-1)), min(kmax, u0-lo)
	}
	for k := kmin; k <= kmax; k++ {
		plot(u0+su*k, v0+floorDiv(2*k*dv+n, 2*n))
	}
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
