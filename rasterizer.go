package shapes

import (
	"image"
	"image/draw"
	"iter"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/gogpu/shapes/async"
	"github.com/gogpu/shapes/internal/cache"
)

// Rasterizer renders paths through the general pipeline. Implementations
// poll ctx between independent chunks of work, return false when they
// stopped because of cancellation, and never modify path, pen or opts.
type Rasterizer interface {
	// DrawPath strokes path with pen.
	DrawPath(ctx async.Context, target Bitmap, path *Path, pen *Pen, opts *DrawingOptions) (bool, error)
	// FillPath fills the interior of path with brush.
	FillPath(ctx async.Context, target Bitmap, path *Path, brush Brush, opts *DrawingOptions) (bool, error)
}

const (
	// DefaultBandHeight is the number of rows composited per chunk.
	DefaultBandHeight = 16

	// DefaultRegionCacheSize is the number of rendered regions kept for
	// paths that prefer caching.
	DefaultRegionCacheSize = 64

	// aliasThreshold is the coverage a pixel needs to be drawn when
	// antialiasing is off. Pixel centers lying exactly on an edge are in.
	aliasThreshold = 127

	// strokeTolerance is the accuracy of pen outline expansion.
	strokeTolerance = 0.1
)

// SoftwareRasterizer is the built-in CPU Rasterizer.
//
// It first builds a coverage mask of the shape, then composites the mask
// onto the target in horizontal bands that run in parallel. Masks of paths
// that prefer caching are kept in an LRU cache keyed by path identity and
// version, so redrawing an unchanged path skips scan conversion.
//
// SoftwareRasterizer is safe for concurrent use.
type SoftwareRasterizer struct {
	bandHeight int
	regions    *cache.Cache[regionKey, *region]
}

// RasterizerOption configures a SoftwareRasterizer.
type RasterizerOption func(*SoftwareRasterizer)

// WithBandHeight sets the number of rows per composited chunk.
// Values below 1 are ignored.
func WithBandHeight(rows int) RasterizerOption {
	return func(r *SoftwareRasterizer) {
		if rows > 0 {
			r.bandHeight = rows
		}
	}
}

// WithRegionCacheSize sets how many rendered regions are cached.
// Zero disables the cache.
func WithRegionCacheSize(n int) RasterizerOption {
	return func(r *SoftwareRasterizer) {
		if n <= 0 {
			r.regions = nil
			return
		}
		r.regions = cache.New[regionKey, *region](n)
	}
}

// NewSoftwareRasterizer creates a rasterizer.
func NewSoftwareRasterizer(opts ...RasterizerOption) *SoftwareRasterizer {
	r := &SoftwareRasterizer{
		bandHeight: DefaultBandHeight,
		regions:    cache.New[regionKey, *region](DefaultRegionCacheSize),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRasterizer = sync.OnceValue(func() *SoftwareRasterizer {
	return NewSoftwareRasterizer()
})

// DefaultRasterizer returns the shared rasterizer used when an Operation
// is not given one.
func DefaultRasterizer() *SoftwareRasterizer {
	return defaultRasterizer()
}

// CachedRegions returns the number of cached regions.
func (r *SoftwareRasterizer) CachedRegions() int {
	if r.regions == nil {
		return 0
	}
	return r.regions.Len()
}

// CacheStats returns statistics of the region cache.
func (r *SoftwareRasterizer) CacheStats() cache.Stats {
	if r.regions == nil {
		return cache.Stats{}
	}
	return r.regions.Stats()
}

// region is the coverage of a shape over the pixels origin+mask.Bounds().
type region struct {
	origin image.Point
	mask   *image.Alpha
}

type regionKey struct {
	path, version uint64
	fill          bool
	width         float64
	join          LineJoin
	startCap      LineCap
	endCap        LineCap
	miterLimit    float64
	antiAliasing  bool
	offset        PixelOffset
	targetW       int
	targetH       int
}

// DrawPath implements Rasterizer.
func (r *SoftwareRasterizer) DrawPath(ctx async.Context, target Bitmap, path *Path, pen *Pen, opts *DrawingOptions) (bool, error) {
	opts = opts.orDefault()
	reg := r.region(target, path, pen, opts)
	return r.composite(ctx, target, reg, pen.Brush, opts)
}

// FillPath implements Rasterizer.
func (r *SoftwareRasterizer) FillPath(ctx async.Context, target Bitmap, path *Path, brush Brush, opts *DrawingOptions) (bool, error) {
	opts = opts.orDefault()
	reg := r.region(target, path, nil, opts)
	return r.composite(ctx, target, reg, brush, opts)
}

// region returns the coverage of path, stroked with pen or filled when pen
// is nil. It returns nil when nothing is visible.
func (r *SoftwareRasterizer) region(target Bitmap, path *Path, pen *Pen, opts *DrawingOptions) *region {
	key := regionKey{
		path:         path.ID(),
		version:      path.Version(),
		fill:         pen == nil,
		antiAliasing: opts.AntiAliasing,
		offset:       opts.PixelOffset,
		targetW:      target.Width(),
		targetH:      target.Height(),
	}
	if pen != nil {
		key.width = pen.Width
		key.join = pen.LineJoin
		key.startCap = pen.StartCap
		key.endCap = pen.EndCap
		key.miterLimit = pen.MiterLimit
	}

	cacheable := r.regions != nil && path.PreferCaching()
	if cacheable {
		if reg, ok := r.regions.Get(key); ok {
			Logger().Debug("shapes: region cache hit", slog.Uint64("path", key.path), slog.Uint64("version", key.version))
			return reg
		}
	}

	clip := image.Rect(0, 0, target.Width(), target.Height())
	var reg *region
	if pen != nil && !opts.AntiAliasing && pen.Width <= 1 {
		reg = hairlineRegion(path, opts.PixelOffset, clip)
	} else {
		reg = vectorRegion(path, pen, opts, clip)
	}

	if cacheable {
		r.regions.Set(key, reg)
	}
	return reg
}

// hairlineRegion walks the path with the same pixel walker as the direct
// lane, so aliased one-pixel strokes match direct drawing exactly.
func hairlineRegion(path *Path, offset PixelOffset, clip image.Rectangle) *region {
	b := path.Bounds()
	area := image.Rect(
		clampInt(math.Floor(b.X)-1), clampInt(math.Floor(b.Y)-1),
		clampInt(math.Ceil(b.Right())+2), clampInt(math.Ceil(b.Bottom())+2),
	).Intersect(clip)
	if area.Empty() || path.IsEmpty() {
		return nil
	}

	// walk with the target clip like the direct lane; area holds every pixel
	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	walkHairline(path.Figures(), offset, clip, func(x, y int) {
		if (image.Point{X: x, Y: y}).In(area) {
			mask.Pix[(y-area.Min.Y)*mask.Stride+x-area.Min.X] = 0xff
		}
	})
	return &region{origin: area.Min, mask: mask}
}

// vectorRegion scan converts the path, or the outline of its stroke when
// pen is set.
func vectorRegion(path *Path, pen *Pen, opts *DrawingOptions, clip image.Rectangle) *region {
	if path.IsEmpty() {
		return nil
	}

	// vector samples pixel (x, y) over [x, x+1); centers sit at +0.5
	shift := 0.5
	if opts.PixelOffset == PixelOffsetHalf {
		shift = 0
	}

	elements := path.elements(shift)
	pad := 0.0
	if pen != nil {
		elements = curve.StrokePath(elements, pen.curveStroke(), curve.StrokeOpts{}, strokeTolerance)
		pad = pen.Width/2*max(pen.miterLimit(), math.Sqrt2) + 1
	}

	b := path.Bounds()
	area := image.Rect(
		clampInt(math.Floor(b.X+shift-pad)), clampInt(math.Floor(b.Y+shift-pad)),
		clampInt(math.Ceil(b.Right()+shift+pad)), clampInt(math.Ceil(b.Bottom()+shift+pad)),
	).Intersect(clip)
	if area.Empty() {
		return nil
	}

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Src
	dx, dy := float64(area.Min.X), float64(area.Min.Y)
	pt := func(p curve.Point) (float32, float32) {
		return float32(p.X - dx), float32(p.Y - dy)
	}
	for el := range elements {
		switch el.Kind {
		case curve.MoveToKind:
			z.MoveTo(pt(el.P0))
		case curve.LineToKind:
			z.LineTo(pt(el.P0))
		case curve.QuadToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			z.QuadTo(x1, y1, x2, y2)
		case curve.CubicToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			x3, y3 := pt(el.P2)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case curve.ClosePathKind:
			z.ClosePath()
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if !opts.AntiAliasing {
		for i, v := range mask.Pix {
			if v >= aliasThreshold {
				mask.Pix[i] = 0xff
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return &region{origin: area.Min, mask: mask}
}

// composite paints the covered pixels of reg band by band.
func (r *SoftwareRasterizer) composite(ctx async.Context, target Bitmap, reg *region, brush Brush, opts *DrawingOptions) (bool, error) {
	if reg == nil {
		return !ctx.IsCancellationRequested(), nil
	}

	w, h := reg.mask.Rect.Dx(), reg.mask.Rect.Dy()
	bands := (h + r.bandHeight - 1) / r.bandHeight
	Logger().Debug("shapes: compositing",
		slog.Int("bands", bands),
		slog.Int("parallelism", ctx.MaxDegreeOfParallelism()))

	q, d := opts.Quantizer, opts.Ditherer
	return async.ParallelFor(ctx, "shapes: composite", bands, func(band int) error {
		y0 := band * r.bandHeight
		y1 := min(y0+r.bandHeight, h)
		for my := y0; my < y1; my++ {
			row := reg.mask.Pix[my*reg.mask.Stride : my*reg.mask.Stride+w]
			y := reg.origin.Y + my
			for mx, cov := range row {
				if cov == 0 {
					continue
				}
				x := reg.origin.X + mx
				c := brush.ColorAt(x, y).scaleAlpha(cov)
				if opts.AlphaBlending {
					c = c.Over(target.GetPixel(x, y))
				}
				switch {
				case q != nil && d != nil:
					c = d.Dither(c, x, y, q)
				case q != nil:
					c = q.Quantize(c)
				}
				target.SetPixel(x, y, c)
			}
		}
		return nil
	})
}

// elements converts the path to curve elements translated by shift.
func (p *Path) elements(shift float64) iter.Seq[curve.PathElement] {
	pt := func(q PointF) curve.Point {
		return curve.Point{X: q.X + shift, Y: q.Y + shift}
	}
	return func(yield func(curve.PathElement) bool) {
		for _, f := range p.figures {
			if f.IsEmpty() {
				continue
			}
			if !yield(curve.PathElement{Kind: curve.MoveToKind, P0: pt(f.Start())}) {
				return
			}
			for _, s := range f.Segments {
				var el curve.PathElement
				switch s.Kind {
				case SegmentLine:
					el = curve.PathElement{Kind: curve.LineToKind, P0: pt(s.P[1])}
				case SegmentCubic:
					el = curve.PathElement{Kind: curve.CubicToKind, P0: pt(s.P[1]), P1: pt(s.P[2]), P2: pt(s.P[3])}
				}
				if !yield(el) {
					return
				}
			}
			if f.Closed {
				if !yield(curve.PathElement{Kind: curve.ClosePathKind}) {
					return
				}
			}
		}
	}
}

func (p *Pen) miterLimit() float64 {
	if p.MiterLimit <= 0 {
		return DefaultMiterLimit
	}
	return p.MiterLimit
}

func (p *Pen) curveStroke() curve.Stroke {
	return curve.Stroke{
		Width:      p.Width,
		Join:       p.LineJoin.curve(),
		MiterLimit: p.miterLimit(),
		StartCap:   p.StartCap.curve(),
		EndCap:     p.EndCap.curve(),
	}
}

func (j LineJoin) curve() curve.Join {
	switch j {
	case LineJoinBevel:
		return curve.BevelJoin
	case LineJoinRound:
		return curve.RoundJoin
	default:
		return curve.MiterJoin
	}
}

func (c LineCap) curve() curve.Cap {
	switch c {
	case LineCapSquare:
		return curve.SquareCap
	case LineCapRound:
		return curve.RoundCap
	default:
		return curve.ButtCap
	}
}

// clampInt converts a pixel coordinate, saturating at the int32 range.
func clampInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
