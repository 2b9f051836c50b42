package shapes

import (
	"image/color"
	"testing"
)

func TestColor32_RGBA(t *testing.T) {
	c := RGBA32(255, 0, 0, 128)
	r, g, b, a := c.RGBA()
	want := color.NRGBA{R: 255, A: 128}
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = %d,%d,%d,%d, want %d,%d,%d,%d", r, g, b, a, wr, wg, wb, wa)
	}

	if got := FromColor(c); got != c {
		t.Errorf("FromColor(RGBA()) = %v, want %v", got, c)
	}
}

func TestColor32_Over(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Color32
		want     Color32
	}{
		{"opaque source", Red, Blue, Red},
		{"transparent source", Transparent, Blue, Blue},
		{"onto transparent", RGBA32(10, 20, 30, 40), Transparent, RGBA32(10, 20, 30, 40)},
		{"half over white", RGBA32(0, 0, 0, 128), White, RGBA32(127, 127, 127, 255)},
		{"half over half", RGBA32(255, 0, 0, 128), RGBA32(0, 0, 255, 128), RGBA32(170, 0, 85, 192)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.Over(tt.dst); got != tt.want {
				t.Errorf("Over() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor32_ScaleAlpha(t *testing.T) {
	if got := Red.scaleAlpha(255); got != Red {
		t.Errorf("scaleAlpha(255) = %v, want %v", got, Red)
	}
	if got := Red.scaleAlpha(0).A; got != 0 {
		t.Errorf("scaleAlpha(0).A = %d, want 0", got)
	}
	if got := RGBA32(0, 0, 0, 200).scaleAlpha(128).A; got != 100 {
		t.Errorf("scaleAlpha(128).A = %d, want 100", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color32
	}{
		{"#fff", White},
		{"000", Black},
		{"#f008", RGBA32(255, 0, 0, 136)},
		{"#00ff00", Green},
		{"0000FF80", RGBA32(0, 0, 255, 128)},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#", "ff", "#12345", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) = nil error, want error", bad)
		}
	}
}
