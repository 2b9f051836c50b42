package shapes

// Pens thinner or wider than this range are always rendered through the
// rasterizer.
const (
	minDirectPenWidth = 0.25
	maxDirectPenWidth = 1.0
)

// canDrawDirectly decides whether a stroke can bypass path construction
// and go straight to the DirectDrawer. It returns the color to draw with.
//
// Opaque strokes qualify with default options or with any options that
// keep the output aliased, untransformed and unquantized. Translucent
// strokes additionally need explicit options that disable alpha blending,
// since the direct lane overwrites pixels.
func canDrawDirectly(s Stroke, o *DrawingOptions) (Color32, bool) {
	var c Color32
	switch v := s.(type) {
	case Color32:
		c = v
	case *Pen:
		if v == nil || v.Width < minDirectPenWidth || v.Width > maxDirectPenWidth {
			return Color32{}, false
		}
		b, ok := v.Brush.(SolidBrush)
		if !ok {
			return Color32{}, false
		}
		c = b.Color
	default:
		return Color32{}, false
	}

	simple := o != nil && !o.AntiAliasing && o.IsIdentityTransform() && o.FastThinLines &&
		o.Quantizer == nil && o.Ditherer == nil

	if c.IsOpaque() {
		return c, o.isDefault() || simple
	}
	return c, simple && !o.AlphaBlending
}
