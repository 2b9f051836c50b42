package hairline

import (
	"image"
	"testing"
)

type pixels map[image.Point]int

func (p pixels) plot(x, y int) { p[image.Pt(x, y)]++ }

var clip = image.Rect(0, 0, 100, 100)

func TestRound(t *testing.T) {
	tests := []struct {
		v    float64
		half bool
		want int
	}{
		{2.0, false, 2},
		{2.49, false, 2},
		{2.5, false, 3},
		{-0.5, false, 0},
		{-0.51, false, -1},
		{2.0, true, 2},
		{2.99, true, 2},
		{-0.01, true, -1},
		{1e300, false, limit},
		{-1e300, true, -limit},
	}
	for _, tt := range tests {
		if got := Round(tt.v, tt.half); got != tt.want {
			t.Errorf("Round(%v, %v) = %d, want %d", tt.v, tt.half, got, tt.want)
		}
	}
}

func TestLine_Endpoints(t *testing.T) {
	px := pixels{}
	Line(1, 1, 8, 4, clip, px.plot)
	if px[image.Pt(1, 1)] == 0 || px[image.Pt(8, 4)] == 0 {
		t.Errorf("endpoints not plotted: %v", px)
	}
	if len(px) != 8 {
		t.Errorf("plotted %d pixels, want 8 (one per column)", len(px))
	}
}

func TestLine_Clipped(t *testing.T) {
	px := pixels{}
	Line(-10, 5, 10, 5, clip, px.plot)
	for p := range px {
		if !p.In(clip) {
			t.Errorf("pixel %v outside clip", p)
		}
	}
	if len(px) != 11 {
		t.Errorf("plotted %d pixels, want 11", len(px))
	}

	px = pixels{}
	Line(-10, -10, -1, 50, clip, px.plot)
	if len(px) != 0 {
		t.Errorf("fully outside line plotted %d pixels", len(px))
	}
}

func TestLine_LongSegmentsAreClipped(t *testing.T) {
	px := pixels{}
	Line(-limit, 5, limit, 5, clip, px.plot)
	if len(px) != 100 {
		t.Errorf("plotted %d pixels, want 100", len(px))
	}

	px = pixels{}
	Line(3, limit, 3, -limit, clip, px.plot)
	if len(px) != 100 {
		t.Errorf("plotted %d pixels, want 100", len(px))
	}
}

func TestLine_MatchesUnclippedWalk(t *testing.T) {
	lines := [][4]int{
		{-20, -7, 130, 60},
		{90, -30, 10, 140},
		{50, 50, -50, 49},
		{0, 0, 99, 99},
		{99, 0, 0, 99},
	}
	wide := image.Rect(-1000, -1000, 1000, 1000)
	for _, l := range lines {
		all, clipped := pixels{}, pixels{}
		Line(l[0], l[1], l[2], l[3], wide, all.plot)
		Line(l[0], l[1], l[2], l[3], clip, clipped.plot)

		want := 0
		for p := range all {
			if p.In(clip) {
				want++
				if clipped[p] != 1 {
					t.Errorf("line %v: pixel %v plotted %d times, want 1", l, p, clipped[p])
				}
			}
		}
		if len(clipped) != want {
			t.Errorf("line %v: %d clipped pixels, want %d", l, len(clipped), want)
		}
	}
}

func TestLine_DiagonalIsExact(t *testing.T) {
	px := pixels{}
	Line(9, 0, 0, 9, clip, px.plot)
	for i := 0; i <= 9; i++ {
		if px[image.Pt(9-i, i)] != 1 {
			t.Errorf("pixel (%d,%d) not plotted once", 9-i, i)
		}
	}
	if len(px) != 10 {
		t.Errorf("plotted %d pixels, want 10", len(px))
	}
}

func TestPolyline_OffscreenEndKeepsSlope(t *testing.T) {
	small := image.Rect(0, 0, 12, 12)
	px := pixels{}
	Polyline([]Point{{0, 0}, {1e9, 5e8}}, false, small, px.plot)
	for x := 0; x < 12; x++ {
		want := image.Pt(x, (x+1)/2)
		if px[want] != 1 {
			t.Errorf("pixel %v not plotted once", want)
		}
	}
	if len(px) != 12 {
		t.Errorf("plotted %d pixels, want 12", len(px))
	}

	// both ends far away on opposite sides
	px = pixels{}
	Polyline([]Point{{-1e9, -5e8}, {1e9, 5e8}}, false, small, px.plot)
	if px[image.Pt(10, 5)] != 1 || px[image.Pt(10, 10)] != 0 {
		t.Errorf("line through the origin with slope 1/2 drew %v", px)
	}
}

func TestPolyline_OffscreenSegmentsSkipped(t *testing.T) {
	px := pixels{}
	Polyline([]Point{{-50, -50}, {-10, -80}, {5, 5}}, false, clip, px.plot)
	for p := range px {
		if !p.In(clip) {
			t.Errorf("pixel %v outside clip", p)
		}
	}
	if px[image.Pt(5, 5)] != 1 {
		t.Error("end point of the visible segment missing")
	}

	px = pixels{}
	Polyline([]Point{{1e300, 1e300}, {-1e300, 1e300}}, true, clip, px.plot)
	if len(px) != 0 {
		t.Errorf("segment far below the clip plotted %d pixels", len(px))
	}
}

func TestPolyline_SinglePixel(t *testing.T) {
	px := pixels{}
	Polyline([]Point{{5, 5}, {5.2, 4.9}, {5, 5}}, false, clip, px.plot)
	if len(px) != 1 || px[image.Pt(5, 5)] != 1 {
		t.Errorf("got %v, want exactly pixel (5,5) once", px)
	}
}

func TestPolyline_HalfOffset(t *testing.T) {
	px := pixels{}
	Polyline([]Point{{0.5, 0.5}, {3.5, 0.5}}, true, clip, px.plot)
	for x := 0; x <= 3; x++ {
		if px[image.Pt(x, 0)] == 0 {
			t.Errorf("pixel (%d,0) missing", x)
		}
	}
	if len(px) != 4 {
		t.Errorf("plotted %d pixels, want 4", len(px))
	}
}
