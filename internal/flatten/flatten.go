// Package flatten converts cubic Bézier curves into polylines.
//
// The subdivision is deterministic: the same control points always produce
// the same vertices, which lets the direct drawer and the rasterizer walk
// identical polylines.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// maxDepth bounds the recursion for degenerate or huge curves.
const maxDepth = 16

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) distance(q Point) float64 {
	d := p.sub(q)
	return math.Sqrt(d.dot(d))
}

// Cubic appends the polyline approximating the cubic Bézier p0..p3 to dst,
// excluding p0 and including p3, and returns the extended slice.
func Cubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	return cubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

// cubicRec recursively subdivides a cubic Bézier curve.
func cubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	// Calculate the distance from control points to the line p0-p3
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < tolerance || depth >= maxDepth {
		return append(dst, p3)
	}

	// Subdivide the curve using de Casteljau's algorithm
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	dst = cubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return cubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLenSq := ab.dot(ab)
	if abLenSq < 1e-20 {
		return p.distance(a)
	}

	t := p.sub(a).dot(ab) / abLenSq
	switch {
	case t < 0:
		return p.distance(a)
	case t > 1:
		return p.distance(b)
	}
	return p.distance(a.lerp(b, t))
}
