package shapes

import (
	"errors"
	"math"
	"testing"
)

func TestAddBeziers_PointCount(t *testing.T) {
	for _, n := range []int{0, 4, 7, 10} {
		p := NewPath()
		if err := p.AddBeziers(make([]PointF, n)...); err != nil {
			t.Errorf("AddBeziers(%d points) error: %v", n, err)
		}
		if got, want := len(p.Figures()) > 0, n > 0; got != want {
			t.Errorf("AddBeziers(%d points): has figure = %v, want %v", n, got, want)
		}
	}
	for _, n := range []int{1, 2, 3, 5, 6} {
		p := NewPath()
		err := p.AddBeziers(make([]PointF, n)...)
		if !errors.Is(err, ErrBezierPointCount) {
			t.Errorf("AddBeziers(%d points) = %v, want ErrBezierPointCount", n, err)
		}
		if !p.IsEmpty() {
			t.Errorf("AddBeziers(%d points) modified the path", n)
		}
	}
}

func TestAddBeziers_Segments(t *testing.T) {
	p := NewPath()
	pts := []PointF{{0, 0}, {1, 1}, {2, 1}, {3, 0}, {4, -1}, {5, -1}, {6, 0}}
	if err := p.AddBeziers(pts...); err != nil {
		t.Fatal(err)
	}
	f := p.Figures()[0]
	if len(f.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(f.Segments))
	}
	if f.Segments[1].Start() != pts[3] || f.Segments[1].End() != pts[6] {
		t.Errorf("second curve spans %v-%v, want %v-%v", f.Segments[1].Start(), f.Segments[1].End(), pts[3], pts[6])
	}
	if f.Closed {
		t.Error("bezier figure should be open")
	}
}

func TestAddLines_Chain(t *testing.T) {
	p := NewPath().AddLines(PointF{0, 0}, PointF{5, 0}, PointF{5, 5})
	f := p.Figures()[0]
	if len(f.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(f.Segments))
	}
	if f.Segments[0].End() != f.Segments[1].Start() {
		t.Error("consecutive segments do not share their point")
	}
}

func TestAddPolygon_Closed(t *testing.T) {
	p := NewPath().AddPolygon(PointF{0, 0}, PointF{10, 0}, PointF{10, 10})
	f := p.Figures()[0]
	if !f.Closed {
		t.Error("polygon figure should be closed")
	}
	if len(f.Segments) != 2 {
		t.Errorf("segments = %d, want 2 explicit edges", len(f.Segments))
	}
}

func TestContinueFigure_Connects(t *testing.T) {
	p := NewPath().AddLine(PointF{0, 0}, PointF{5, 0}).AddLine(PointF{10, 0}, PointF{10, 5})
	if n := len(p.Figures()); n != 1 {
		t.Fatalf("figures = %d, want 1", n)
	}
	segs := p.Figures()[0].Segments
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3 (with connecting line)", len(segs))
	}
	if segs[1].Start() != (PointF{5, 0}) || segs[1].End() != (PointF{10, 0}) {
		t.Errorf("connecting line = %v-%v", segs[1].Start(), segs[1].End())
	}

	p.StartFigure().AddLine(PointF{20, 20}, PointF{30, 30})
	if n := len(p.Figures()); n != 2 {
		t.Errorf("figures after StartFigure = %d, want 2", n)
	}
}

func TestRoundedRectangle_ClampsRadii(t *testing.T) {
	r := RectF{X: 0, Y: 0, Width: 10, Height: 4}
	c := clampRadii(r, Corners[float64]{TopLeft: 100, TopRight: 1, BottomRight: -3, BottomLeft: 2})
	want := Corners[float64]{TopLeft: 2, TopRight: 1, BottomRight: 0, BottomLeft: 2}
	if c != want {
		t.Errorf("clampRadii = %+v, want %+v", c, want)
	}

	b := NewPath().AddRoundedRectangle(r, 50).Bounds()
	if b.X < -1e-9 || b.Y < -1e-9 || b.Right() > 10+1e-9 || b.Bottom() > 4+1e-9 {
		t.Errorf("rounded rectangle bounds %+v exceed the rectangle", b)
	}
}

func TestRoundedRectangle_ZeroRadiusIsRectangle(t *testing.T) {
	r := RectF{X: 1, Y: 2, Width: 3, Height: 4}
	got := roundedRectangleFigure(r, Corners[float64]{})
	want := rectangleFigure(r)
	if len(got.Segments) != len(want.Segments) {
		t.Errorf("segments = %d, want %d", len(got.Segments), len(want.Segments))
	}
}

func TestArc_Angles(t *testing.T) {
	r := RectF{X: -10, Y: -10, Width: 20, Height: 20}
	segs := arcSegments(r, 0, 90)
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	start, end := segs[0].Start(), segs[0].End()
	if !near(start.X, 10) || !near(start.Y, 0) {
		t.Errorf("start = %v, want (10, 0)", start)
	}
	// positive sweep is clockwise on screen: 90 degrees ends below the center
	if !near(end.X, 0) || !near(end.Y, 10) {
		t.Errorf("end = %v, want (0, 10)", end)
	}

	if n := len(arcSegments(r, 0, 720)); n != 4 {
		t.Errorf("full sweep segments = %d, want 4", n)
	}
	if n := len(arcSegments(r, 45, -135)); n != 2 {
		t.Errorf("negative sweep segments = %d, want 2", n)
	}
}

func TestArc_EllipseDirection(t *testing.T) {
	r := RectF{X: 0, Y: 0, Width: 40, Height: 20}
	segs := arcSegments(r, 0, 45)
	end := segs[len(segs)-1].End()
	angle := math.Atan2(end.Y-10, end.X-20) * 180 / math.Pi
	if !near(angle, 45) {
		t.Errorf("arc end direction = %v degrees, want 45", angle)
	}
}

func TestPie_Closed(t *testing.T) {
	f := pieFigure(RectF{Width: 20, Height: 20}, 0, 90)
	if !f.Closed {
		t.Error("pie should be closed")
	}
	if f.Start() != (PointF{10, 10}) {
		t.Errorf("pie starts at %v, want center (10, 10)", f.Start())
	}
}

func TestPath_TransformDoesNotMutate(t *testing.T) {
	p := NewPath().AddRectangle(RectF{X: 1, Y: 1, Width: 2, Height: 2})
	version := p.Version()

	if got := p.Transform(Identity()); got != p {
		t.Error("identity transform should return the receiver")
	}

	tp := p.Transform(Translate(10, 0))
	if tp == p {
		t.Fatal("transform returned the receiver")
	}
	if tp.PreferCaching() {
		t.Error("transformed path should not prefer caching")
	}
	if !p.PreferCaching() {
		t.Error("NewPath should prefer caching")
	}
	if p.Version() != version || p.Bounds().X != 1 {
		t.Error("transform mutated the source path")
	}
	if tp.Bounds().X != 11 {
		t.Errorf("transformed bounds X = %v, want 11", tp.Bounds().X)
	}
}

func TestPath_VersionAndClone(t *testing.T) {
	p := NewPath()
	v0 := p.Version()
	p.AddLine(PointF{0, 0}, PointF{1, 1})
	if p.Version() == v0 {
		t.Error("version did not change after AddLine")
	}

	c := p.Clone()
	if c.ID() == p.ID() {
		t.Error("clone shares the path id")
	}
	c.AddLine(PointF{5, 5}, PointF{6, 6})
	if len(p.Figures()[0].Segments) != 1 {
		t.Error("modifying the clone changed the original")
	}
}

func TestPath_Bounds(t *testing.T) {
	if b := NewPath().Bounds(); b != (RectF{}) {
		t.Errorf("empty bounds = %+v", b)
	}
	b := NewPath().AddLines(PointF{3, 4}, PointF{-1, 8}, PointF{5, 2}).Bounds()
	want := RectF{X: -1, Y: 2, Width: 6, Height: 6}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
