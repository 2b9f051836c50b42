package shapes

import (
	"image/color"
	"image/color/palette"
)

// Quantizer maps colors to a restricted set.
// Implementations must be safe for concurrent use.
type Quantizer interface {
	Quantize(c Color32) Color32
}

// Ditherer adjusts a color at a given pixel before it is quantized.
// Implementations must be safe for concurrent use and must not depend on
// the order in which pixels are visited.
type Ditherer interface {
	Dither(c Color32, x, y int, q Quantizer) Color32
}

// PaletteQuantizer maps every color to the nearest entry of a fixed palette.
type PaletteQuantizer struct {
	palette color.Palette
	colors  []Color32
}

// NewPaletteQuantizer creates a quantizer for the given colors.
func NewPaletteQuantizer(colors ...Color32) *PaletteQuantizer {
	p := make(color.Palette, len(colors))
	cs := make([]Color32, len(colors))
	for i, c := range colors {
		p[i] = c
		cs[i] = c
	}
	return &PaletteQuantizer{palette: p, colors: cs}
}

// WebSafeQuantizer returns a quantizer for the 216-color web-safe palette.
func WebSafeQuantizer() *PaletteQuantizer {
	colors := make([]Color32, len(palette.WebSafe))
	for i, c := range palette.WebSafe {
		colors[i] = FromColor(c)
	}
	return NewPaletteQuantizer(colors...)
}

// Quantize implements Quantizer.
func (q *PaletteQuantizer) Quantize(c Color32) Color32 {
	if len(q.colors) == 0 {
		return c
	}
	return q.colors[q.palette.Index(c)]
}

// Len returns the palette size.
func (q *PaletteQuantizer) Len() int {
	return len(q.colors)
}

// bayer4 is the 4x4 ordered dithering matrix.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// OrderedDitherer applies a 4x4 Bayer threshold before quantizing.
type OrderedDitherer struct {
	// Strength is the amplitude of the threshold in color units.
	Strength float64
}

// NewOrderedDitherer creates an ordered ditherer. A strength <= 0 selects 32.
func NewOrderedDitherer(strength float64) *OrderedDitherer {
	if strength <= 0 {
		strength = 32
	}
	return &OrderedDitherer{Strength: strength}
}

// Dither implements Ditherer.
func (d *OrderedDitherer) Dither(c Color32, x, y int, q Quantizer) Color32 {
	if q == nil {
		return c
	}
	t := (float64(bayer4[y&3][x&3])+0.5)/16 - 0.5
	off := t * d.Strength
	shift := func(v uint8) uint8 {
		return uint8(min(max(float64(v)+off, 0), 255) + 0.5)
	}
	return q.Quantize(Color32{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A})
}
