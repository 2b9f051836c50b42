package shapes

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Bitmap is the pixel surface shapes draw into.
//
// Out-of-range writes must be ignored and out-of-range reads must return the
// zero color. The general pipeline writes disjoint pixels from several
// goroutines at once, so implementations must tolerate concurrent SetPixel
// calls on distinct coordinates. The caller must not mutate the bitmap from
// another goroutine while an operation is in flight.
type Bitmap interface {
	Width() int
	Height() int
	GetPixel(x, y int) Color32
	SetPixel(x, y int, c Color32)
}

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, straight alpha
}

var (
	_ Bitmap      = (*Pixmap)(nil)
	_ image.Image = (*Pixmap)(nil)
)

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color32{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color32) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
