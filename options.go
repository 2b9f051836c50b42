package shapes

// PixelOffset selects where pixel centers lie for floating point coordinates.
type PixelOffset int

const (
	// PixelOffsetNone places pixel centers on integer coordinates:
	// (2.0, 3.0) is the center of pixel (2, 3).
	PixelOffsetNone PixelOffset = iota
	// PixelOffsetHalf places pixel centers at .5: (2.5, 3.5) is the
	// center of pixel (2, 3) and (2.0, 3.0) is its top-left corner.
	PixelOffsetHalf
)

// DrawingOptions controls antialiasing, blending, transformation,
// quantizing and dithering of a drawing operation.
//
// Options are read-only for the duration of an operation. A nil
// *DrawingOptions means DefaultDrawingOptions.
type DrawingOptions struct {
	// AntiAliasing enables smooth edges.
	AntiAliasing bool
	// AlphaBlending blends translucent colors over the target instead of
	// overwriting its pixels.
	AlphaBlending bool
	// Transformation is applied to the shape before rendering. The zero
	// Matrix is treated as identity.
	Transformation Matrix
	// FastThinLines allows one-pixel strokes to be drawn directly without
	// building a path.
	FastThinLines bool
	// Quantizer, when set, maps every written color to a palette.
	Quantizer Quantizer
	// Ditherer, when set together with Quantizer, spreads quantization error.
	Ditherer Ditherer
	// PixelOffset aligns floating point coordinates to pixels.
	PixelOffset PixelOffset
}

// DefaultDrawingOptions returns the options used when nil is passed.
func DefaultDrawingOptions() *DrawingOptions {
	return &DrawingOptions{
		AlphaBlending:  true,
		Transformation: Identity(),
		FastThinLines:  true,
	}
}

// IsIdentityTransform reports whether Transformation leaves shapes unchanged.
func (o *DrawingOptions) IsIdentityTransform() bool {
	return o == nil || o.Transformation.IsIdentity()
}

// isDefault reports whether o is equivalent to DefaultDrawingOptions.
func (o *DrawingOptions) isDefault() bool {
	if o == nil {
		return true
	}
	return !o.AntiAliasing && o.AlphaBlending && o.IsIdentityTransform() && o.FastThinLines &&
		o.Quantizer == nil && o.Ditherer == nil && o.PixelOffset == PixelOffsetNone
}

func (o *DrawingOptions) orDefault() *DrawingOptions {
	if o == nil {
		return DefaultDrawingOptions()
	}
	return o
}

// OperationOption configures an Operation.
// Use functional options to inject collaborators.
//
// Example:
//
//	op := shapes.Ellipse(bmp, shapes.Red, r, nil).
//		With(shapes.WithRasterizer(myRasterizer))
type OperationOption func(*operationOptions)

type operationOptions struct {
	rasterizer Rasterizer
	direct     DirectDrawer
}

func defaultOperationOptions() operationOptions {
	return operationOptions{
		rasterizer: DefaultRasterizer(),
		direct:     DefaultDirectDrawer(),
	}
}

// WithRasterizer sets the rasterizer used by the general pipeline.
func WithRasterizer(r Rasterizer) OperationOption {
	return func(o *operationOptions) {
		if r != nil {
			o.rasterizer = r
		}
	}
}

// WithDirectDrawer sets the drawer used for shortcut-eligible strokes.
func WithDirectDrawer(d DirectDrawer) OperationOption {
	return func(o *operationOptions) {
		if d != nil {
			o.direct = d
		}
	}
}
