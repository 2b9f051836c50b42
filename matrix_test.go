package shapes

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   PointF
		want PointF
	}{
		{"identity", Identity(), PointF{3, 4}, PointF{3, 4}},
		{"zero is identity", Matrix{}, PointF{3, 4}, PointF{3, 4}},
		{"translate", Translate(10, -2), PointF{3, 4}, PointF{13, 2}},
		{"scale", Scale(2, 3), PointF{3, 4}, PointF{6, 12}},
		{"rotate 90 clockwise", Rotate(90), PointF{1, 0}, PointF{0, 1}},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), PointF{3, 4}, PointF{7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			if m.IsIdentity() {
				m = Identity()
			}
			got := m.TransformPoint(tt.in)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() || !(Matrix{}).IsIdentity() {
		t.Error("identity and zero matrix should be identity")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
}

func TestMatrix_Aff3RoundTrip(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(30)).Multiply(Scale(2, 0.5))
	a := m.Aff3()
	if got := MatrixFromAff3(a); got != m {
		t.Errorf("MatrixFromAff3(Aff3()) = %+v, want %+v", got, m)
	}

	// x/image applies Aff3 as x' = a[0]x + a[1]y + a[2]
	p := PointF{X: 7, Y: -4}
	want := m.TransformPoint(p)
	gx := a[0]*p.X + a[1]*p.Y + a[2]
	gy := a[3]*p.X + a[4]*p.Y + a[5]
	if math.Abs(gx-want.X) > 1e-12 || math.Abs(gy-want.Y) > 1e-12 {
		t.Errorf("Aff3 maps %v to (%v, %v), want %v", p, gx, gy, want)
	}

	if got := (Matrix{}).Aff3(); got != (f64.Aff3{1, 0, 0, 0, 1, 0}) {
		t.Errorf("zero Matrix Aff3() = %v, want identity", got)
	}
}
