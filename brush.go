package shapes

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: A single solid color
//   - LinearGradientBrush: A two-stop linear gradient
//   - FuncBrush: User-defined color function
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color of the pixel at (x, y) in target coordinates.
	ColorAt(x, y int) Color32
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color Color32
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ int) Color32 {
	return b.Color
}

// HasAlpha reports whether the brush color is not fully opaque.
func (b SolidBrush) HasAlpha() bool {
	return b.Color.A < 255
}

// Solid creates a SolidBrush.
func Solid(c Color32) SolidBrush {
	return SolidBrush{Color: c}
}

// FuncBrush computes the color of every pixel with a callback.
// Func must be safe for concurrent use: the rasterizer calls it from
// several goroutines when rendering in parallel.
type FuncBrush struct {
	Func func(x, y int) Color32
}

func (FuncBrush) brushMarker() {}

// ColorAt implements Brush.
func (b FuncBrush) ColorAt(x, y int) Color32 {
	if b.Func == nil {
		return Transparent
	}
	return b.Func(x, y)
}

// LinearGradientBrush interpolates between two colors along the line
// from Start to End. Pixels are sampled at their centers.
type LinearGradientBrush struct {
	Start, End           PointF
	StartColor, EndColor Color32
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush.
func (b LinearGradientBrush) ColorAt(x, y int) Color32 {
	dx, dy := b.End.X-b.Start.X, b.End.Y-b.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return b.StartColor
	}

	t := ((float64(x)-b.Start.X)*dx + (float64(y)-b.Start.Y)*dy) / lenSq
	t = min(max(t, 0), 1)

	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color32{
		R: mix(b.StartColor.R, b.EndColor.R),
		G: mix(b.StartColor.G, b.EndColor.G),
		B: mix(b.StartColor.B, b.EndColor.B),
		A: mix(b.StartColor.A, b.EndColor.A),
	}
}
