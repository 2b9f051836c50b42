package shapes

import (
	"fmt"
	"image/color"
)

// Color32 is a 32-bit straight-alpha RGBA color.
// A value of 255 in A means fully opaque.
type Color32 struct {
	R, G, B, A uint8
}

// RGB32 creates an opaque color.
func RGB32(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// RGBA32 creates a color with explicit alpha.
func RGBA32(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// IsOpaque reports whether the color has no transparency.
func (c Color32) IsOpaque() bool {
	return c.A == 255
}

// WithAlpha returns the color with its alpha replaced.
func (c Color32) WithAlpha(a uint8) Color32 {
	c.A = a
	return c
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to Color32.
func FromColor(c color.Color) Color32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color32{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Over composites c over dst using straight-alpha source-over blending.
func (c Color32) Over(dst Color32) Color32 {
	switch {
	case c.A == 255:
		return c
	case c.A == 0:
		return dst
	case dst.A == 0:
		return c
	}

	sa := uint32(c.A)
	inv := 255 - sa
	// dst alpha scaled by the remaining source transparency, kept at 255x scale
	da := uint32(dst.A) * inv
	outA := sa*255 + da
	half := outA / 2

	return Color32{
		R: uint8((uint32(c.R)*sa*255 + uint32(dst.R)*da + half) / outA),
		G: uint8((uint32(c.G)*sa*255 + uint32(dst.G)*da + half) / outA),
		B: uint8((uint32(c.B)*sa*255 + uint32(dst.B)*da + half) / outA),
		A: uint8((outA + 127) / 255),
	}
}

// scaleAlpha multiplies the alpha channel by coverage/255 with rounding.
func (c Color32) scaleAlpha(coverage uint8) Color32 {
	if coverage == 255 {
		return c
	}
	c.A = uint8((uint32(c.A)*uint32(coverage) + 127) / 255)
	return c
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func ParseHex(hex string) (Color32, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color32{}, fmt.Errorf("shapes: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color32{}, fmt.Errorf("shapes: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color32{}, fmt.Errorf("shapes: invalid hex color %q", hex)
	}

	return Color32{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black       = RGB32(0, 0, 0)
	White       = RGB32(255, 255, 255)
	Red         = RGB32(255, 0, 0)
	Green       = RGB32(0, 255, 0)
	Blue        = RGB32(0, 0, 255)
	Transparent = Color32{}
)
