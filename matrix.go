package shapes

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in degrees, clockwise on screen).
func Rotate(degrees float64) Matrix {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p PointF) PointF {
	return PointF{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
// The zero Matrix is treated as identity so that a zero-valued
// DrawingOptions does not collapse every shape to a point.
func (m Matrix) IsIdentity() bool {
	if m == (Matrix{}) {
		return true
	}
	return m == Identity()
}

// Aff3 returns the matrix in the layout used by golang.org/x/image.
func (m Matrix) Aff3() f64.Aff3 {
	if m == (Matrix{}) {
		m = Identity()
	}
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// MatrixFromAff3 converts a golang.org/x/image affine matrix.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}
