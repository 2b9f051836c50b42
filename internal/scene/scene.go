// Package scene loads YAML scene descriptions and turns them into drawing
// operations.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
)

// Scene is a canvas and the shapes drawn onto it, in order.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background,omitempty"`
	Options    Options `yaml:"options,omitempty"`
	Shapes     []Shape `yaml:"shapes"`
}

// Options mirrors shapes.DrawingOptions. Unset fields keep the library
// defaults.
type Options struct {
	AntiAliasing  *bool      `yaml:"antialiasing,omitempty"`
	AlphaBlending *bool      `yaml:"alphaBlending,omitempty"`
	FastThinLines *bool      `yaml:"fastThinLines,omitempty"`
	PixelOffset   string     `yaml:"pixelOffset,omitempty"`
	Quantizer     string     `yaml:"quantizer,omitempty"`
	Dither        float64    `yaml:"dither,omitempty"`
	Transform     *Transform `yaml:"transform,omitempty"`
}

// Transform is applied as scale, then rotate, then translate.
type Transform struct {
	Translate [2]float64 `yaml:"translate,omitempty"`
	Scale     [2]float64 `yaml:"scale,omitempty"`
	Rotate    float64    `yaml:"rotate,omitempty"`
}

// Shape is one drawing call.
type Shape struct {
	// Kind is one of line, lines, beziers, polygon, rectangle, ellipse,
	// arc, pie, rounded-rectangle, or fill- followed by polygon,
	// rectangle, ellipse, pie or rounded-rectangle.
	Kind string `yaml:"kind"`
	// Color is a hex color.
	Color string `yaml:"color"`
	// Width selects a pen of that width; zero strokes with the plain color.
	Width  float64      `yaml:"width,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty"`
	// Rect is x, y, width, height.
	Rect   [4]float64 `yaml:"rect,omitempty"`
	Start  float64    `yaml:"start,omitempty"`
	Sweep  float64    `yaml:"sweep,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
	// Options overrides the scene options for this shape.
	Options *Options `yaml:"options,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// NewTarget creates a pixmap of the scene size filled with the background.
func (s *Scene) NewTarget() (*shapes.Pixmap, error) {
	pm := shapes.NewPixmap(s.Width, s.Height)
	if s.Background != "" {
		c, err := shapes.ParseHex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		pm.Clear(c)
	}
	return pm, nil
}

// Operations builds one operation per shape. Argument errors of the shapes
// are returned here rather than at execution.
func (s *Scene) Operations(target shapes.Bitmap) ([]*shapes.Operation, error) {
	ops := make([]*shapes.Operation, 0, len(s.Shapes))
	var errs []error
	for i, sh := range s.Shapes {
		opts := s.Options
		if sh.Options != nil {
			opts = opts.merge(*sh.Options)
		}
		drawing, err := opts.drawingOptions()
		if err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err))
			continue
		}
		op, err := sh.operation(target, drawing)
		if err == nil {
			err = op.Err()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err))
			continue
		}
		ops = append(ops, op)
	}
	return ops, errors.Join(errs...)
}

func (sh Shape) operation(target shapes.Bitmap, opts *shapes.DrawingOptions) (*shapes.Operation, error) {
	c, err := shapes.ParseHex(sh.Color)
	if err != nil {
		return nil, err
	}
	var stroke shapes.Stroke = c
	if sh.Width > 0 {
		stroke = shapes.NewPen(c, sh.Width)
	}
	brush := shapes.Solid(c)

	pts := make([]shapes.PointF, len(sh.Points))
	for i, p := range sh.Points {
		pts[i] = shapes.Pt(p[0], p[1])
	}
	r := shapes.R(sh.Rect[0], sh.Rect[1], sh.Rect[2], sh.Rect[3])

	switch strings.ToLower(sh.Kind) {
	case "line":
		if len(pts) != 2 {
			return nil, fmt.Errorf("line needs 2 points, got %d", len(pts))
		}
		return shapes.Line(target, stroke, pts[0], pts[1], opts), nil
	case "lines":
		return shapes.Lines(target, stroke, pts, opts), nil
	case "beziers":
		return shapes.Beziers(target, stroke, pts, opts), nil
	case "polygon":
		return shapes.Polygon(target, stroke, pts, opts), nil
	case "rectangle":
		return shapes.Rectangle(target, stroke, r, opts), nil
	case "ellipse":
		return shapes.Ellipse(target, stroke, r, opts), nil
	case "arc":
		return shapes.Arc(target, stroke, r, sh.Start, sh.Sweep, opts), nil
	case "pie":
		return shapes.Pie(target, stroke, r, sh.Start, sh.Sweep, opts), nil
	case "rounded-rectangle":
		return shapes.RoundedRectangle(target, stroke, r, sh.Radius, opts), nil
	case "fill-polygon":
		return shapes.FillPolygon(target, brush, pts, opts), nil
	case "fill-rectangle":
		return shapes.FillRectangle(target, brush, r, opts), nil
	case "fill-ellipse":
		return shapes.FillEllipse(target, brush, r, opts), nil
	case "fill-pie":
		return shapes.FillPie(target, brush, r, sh.Start, sh.Sweep, opts), nil
	case "fill-rounded-rectangle":
		return shapes.FillRoundedRectangle(target, brush, r, sh.Radius, opts), nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", sh.Kind)
}

// merge returns o with every field set in override replaced.
func (o Options) merge(override Options) Options {
	if override.AntiAliasing != nil {
		o.AntiAliasing = override.AntiAliasing
	}
	if override.AlphaBlending != nil {
		o.AlphaBlending = override.AlphaBlending
	}
	if override.FastThinLines != nil {
		o.FastThinLines = override.FastThinLines
	}
	if override.PixelOffset != "" {
		o.PixelOffset = override.PixelOffset
	}
	if override.Quantizer != "" {
		o.Quantizer = override.Quantizer
	}
	if override.Dither != 0 {
		o.Dither = override.Dither
	}
	if override.Transform != nil {
		o.Transform = override.Transform
	}
	return o
}

func (o Options) drawingOptions() (*shapes.DrawingOptions, error) {
	d := shapes.DefaultDrawingOptions()
	if o.AntiAliasing != nil {
		d.AntiAliasing = *o.AntiAliasing
	}
	if o.AlphaBlending != nil {
		d.AlphaBlending = *o.AlphaBlending
	}
	if o.FastThinLines != nil {
		d.FastThinLines = *o.FastThinLines
	}

	switch strings.ToLower(o.PixelOffset) {
	case "", "none":
	case "half":
		d.PixelOffset = shapes.PixelOffsetHalf
	default:
		return nil, fmt.Errorf("unknown pixel offset %q", o.PixelOffset)
	}

	switch strings.ToLower(o.Quantizer) {
	case "":
	case "websafe":
		d.Quantizer = shapes.WebSafeQuantizer()
	default:
		return nil, fmt.Errorf("unknown quantizer %q", o.Quantizer)
	}
	if o.Dither > 0 {
		d.Ditherer = shapes.NewOrderedDitherer(o.Dither)
	}

	if t := o.Transform; t != nil {
		m := shapes.Identity()
		if t.Scale != [2]float64{} {
			m = shapes.Scale(t.Scale[0], t.Scale[1]).Multiply(m)
		}
		if t.Rotate != 0 {
			m = shapes.Rotate(t.Rotate).Multiply(m)
		}
		m = shapes.Translate(t.Translate[0], t.Translate[1]).Multiply(m)
		d.Transformation = m
	}
	return d, nil
}
