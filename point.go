package shapes

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coord is the set of numeric types accepted as drawing coordinates.
// Integer coordinates address pixels exactly; floating point coordinates
// are aligned according to [DrawingOptions.PixelOffset].
type Coord interface {
	constraints.Signed | constraints.Float
}

// Point is a 2D point.
type Point[T Coord] struct {
	X, Y T
}

// PointF is the float64 point used by Path geometry.
type PointF = Point[float64]

// Pt is a convenience function to create a Point.
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Float converts the point to float64 coordinates.
func (p Point[T]) Float() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// Rect is an axis-aligned rectangle. The right and bottom edges
// (X+Width, Y+Height) are inclusive when drawn.
type Rect[T Coord] struct {
	X, Y          T
	Width, Height T
}

// RectF is the float64 rectangle used by Path geometry.
type RectF = Rect[float64]

// R is a convenience function to create a Rect.
func R[T Coord](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

// Float converts the rectangle to float64 coordinates.
func (r Rect[T]) Float() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}

// Right returns X+Width.
func (r Rect[T]) Right() T { return r.X + r.Width }

// Bottom returns Y+Height.
func (r Rect[T]) Bottom() T { return r.Y + r.Height }

// Corners holds one radius per corner of a rounded rectangle.
type Corners[T Coord] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

// Float converts the radii to float64.
func (c Corners[T]) Float() Corners[float64] {
	return Corners[float64]{
		TopLeft:     float64(c.TopLeft),
		TopRight:    float64(c.TopRight),
		BottomRight: float64(c.BottomRight),
		BottomLeft:  float64(c.BottomLeft),
	}
}

// isIntegral reports whether T is an integer type.
func isIntegral[T Coord]() bool {
	var half T = 1
	half /= 2
	return half == 0
}

func toFloats[T Coord](points []Point[T]) []PointF {
	res := make([]PointF, len(points))
	for i, p := range points {
		res[i] = p.Float()
	}
	return res
}

func normalizeRect(r RectF) RectF {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// unionBounds extends b to contain p. An empty b (NaN X) takes p as its origin.
func unionBounds(b *RectF, p PointF) {
	if math.IsNaN(b.X) {
		*b = RectF{X: p.X, Y: p.Y}
		return
	}
	if p.X < b.X {
		b.Width += b.X - p.X
		b.X = p.X
	} else if p.X > b.Right() {
		b.Width = p.X - b.X
	}
	if p.Y < b.Y {
		b.Height += b.Y - p.Y
		b.Y = p.Y
	} else if p.Y > b.Bottom() {
		b.Height = p.Y - b.Y
	}
}
