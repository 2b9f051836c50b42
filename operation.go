package shapes

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/shapes/async"
)

// Operation is a validated drawing call waiting to be executed.
//
// Shape constructors such as [Line] or [FillEllipse] return an Operation.
// Argument errors are recorded in the Operation and returned by whichever
// execution method is used, before any pixel is touched. An Operation may
// be executed more than once; every execution re-evaluates the direct lane
// and builds its own Path.
type Operation struct {
	name   string
	target Bitmap
	opts   *DrawingOptions
	err    error

	// integral is set for integer coordinates.
	integral bool

	// stroke operations
	stroke Stroke
	direct func(d DirectDrawer, target Bitmap, c Color32, offset PixelOffset)

	// fill operations
	brush Brush

	// path is the caller's path, or nil when build creates one per run.
	path  *Path
	build func(p *Path)

	collab operationOptions
}

// plan is what one execution of an Operation does.
type plan struct {
	direct bool
	color  Color32
	offset PixelOffset

	path  *Path
	pen   *Pen
	brush Brush
	opts  *DrawingOptions
}

func newOperation(name string, target Bitmap, opts *DrawingOptions, integral bool) *Operation {
	op := &Operation{
		name:     name,
		target:   target,
		opts:     opts,
		integral: integral,
		collab:   defaultOperationOptions(),
	}
	if target == nil {
		op.err = ErrNilTarget
	}
	return op
}

func newStrokeOperation[T Coord](name string, target Bitmap, s Stroke, opts *DrawingOptions,
	direct func(d DirectDrawer, target Bitmap, c Color32, offset PixelOffset), build func(p *Path)) *Operation {
	op := newOperation(name, target, opts, isIntegral[T]())
	op.stroke, op.direct, op.build = s, direct, build
	op.fail(validateStroke(s))
	return op
}

func newFillOperation[T Coord](name string, target Bitmap, b Brush, opts *DrawingOptions, build func(p *Path)) *Operation {
	op := newOperation(name, target, opts, isIntegral[T]())
	op.brush, op.build = b, build
	if b == nil {
		op.fail(ErrNilBrush)
	}
	return op
}

func validateStroke(s Stroke) error {
	switch v := s.(type) {
	case nil:
		return ErrNilPen
	case *Pen:
		if v == nil {
			return ErrNilPen
		}
		if v.Brush == nil {
			return ErrNilBrush
		}
		if !(v.Width > 0) || math.IsInf(v.Width, 1) {
			return fmt.Errorf("%w: %v", ErrPenWidth, v.Width)
		}
	}
	return nil
}

// fail records the first argument error.
func (op *Operation) fail(err error) {
	if op.err == nil && err != nil {
		op.err = err
	}
}

// With applies collaborator options and returns op.
func (op *Operation) With(opts ...OperationOption) *Operation {
	for _, opt := range opts {
		opt(&op.collab)
	}
	return op
}

// Err returns the argument error recorded when the Operation was created.
func (op *Operation) Err() error {
	return op.err
}

// prepare validates the operation and decides between the direct lane and
// the rasterizer.
func (op *Operation) prepare() (plan, error) {
	if op.err != nil {
		return plan{}, fmt.Errorf("%s: %w", op.name, op.err)
	}

	if op.direct != nil {
		if c, ok := canDrawDirectly(op.stroke, op.opts); ok {
			p := plan{direct: true, color: c}
			if !op.integral && op.opts != nil {
				p.offset = op.opts.PixelOffset
			}
			return p, nil
		}
	}

	path := op.path
	if path == nil {
		path = newScratchPath()
		op.build(path)
	}

	opts := op.opts.orDefault()
	if !opts.IsIdentityTransform() {
		path = path.Transform(opts.Transformation)
		if op.integral {
			if err := checkIntRange(path.Bounds()); err != nil {
				return plan{}, fmt.Errorf("%s: %w", op.name, err)
			}
		}
	}
	if op.integral && opts.PixelOffset != PixelOffsetNone {
		o := *opts
		o.PixelOffset = PixelOffsetNone
		opts = &o
	}

	p := plan{path: path, opts: opts, brush: op.brush}
	if op.stroke != nil {
		p.pen = op.stroke.stroke()
	}
	return p, nil
}

// checkIntRange reports ErrOverflow when b does not fit into 32-bit pixel
// coordinates.
func checkIntRange(b RectF) error {
	for _, v := range [...]float64{b.X, b.Y, b.Right(), b.Bottom()} {
		if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("%w: bounds %v", ErrOverflow, b)
		}
	}
	return nil
}

func (op *Operation) drawDirectly(p plan) {
	Logger().Debug("shapes: direct draw", slog.String("shape", op.name))
	op.direct(op.collab.direct, op.target, p.color, p.offset)
}

// body returns the rasterizer call of p as an async operation body.
func (op *Operation) body(p plan) async.Func {
	Logger().Debug("shapes: rasterize", slog.String("shape", op.name),
		slog.Bool("antialiasing", p.opts.AntiAliasing),
		slog.Bool("cacheable", p.path.PreferCaching()))
	r := op.collab.rasterizer
	return func(ctx async.Context) (bool, error) {
		if p.pen != nil {
			return r.DrawPath(ctx, op.target, p.path, p.pen, p.opts)
		}
		return r.FillPath(ctx, op.target, p.path, p.brush, p.opts)
	}
}

// Draw executes the operation on the calling goroutine with default
// parallelism and no cancellation.
func (op *Operation) Draw() error {
	p, err := op.prepare()
	if err != nil {
		return err
	}
	if p.direct {
		op.drawDirectly(p)
		return nil
	}
	return async.Run(op.body(p))
}

// DrawWithConfig executes the operation on the calling goroutine with the
// parallelism, cancellation and progress settings of cfg. It returns false
// when the operation was canceled; pixels written before the cancellation
// stay written.
//
// Direct draws are never interrupted, but a cfg whose context was already
// canceled still yields false (or ErrCanceled) after drawing.
func (op *Operation) DrawWithConfig(cfg *async.Config) (bool, error) {
	p, err := op.prepare()
	if err != nil {
		return false, err
	}
	if p.direct {
		op.drawDirectly(p)
		return async.FromResult(true, cfg)
	}
	return async.RunWithConfig(cfg, op.body(p))
}

// DrawWithContext executes the operation as part of an outer operation
// that owns ctx. A nil ctx means async.Default().
func (op *Operation) DrawWithContext(ctx async.Context) (bool, error) {
	if ctx == nil {
		ctx = async.Default()
	}
	p, err := op.prepare()
	if err != nil {
		return false, err
	}
	if p.direct {
		op.drawDirectly(p)
		return !ctx.IsCancellationRequested(), nil
	}
	return async.RunWithContext(ctx, op.body(p))
}

// Begin starts the operation and returns immediately. Call async.End to
// wait for the result. Direct draws complete before Begin returns.
func (op *Operation) Begin(cfg *async.Config) *async.Future {
	return op.start(cfg, async.Begin)
}

// DrawAsync starts the operation on the shared worker pool and returns a
// Future for its result. Direct draws complete before DrawAsync returns.
func (op *Operation) DrawAsync(cfg *async.Config) *async.Future {
	return op.start(cfg, async.Start)
}

func (op *Operation) start(cfg *async.Config, launch func(*async.Config, async.Func) *async.Future) *async.Future {
	p, err := op.prepare()
	if err != nil {
		return async.Failed(cfg, err)
	}
	if p.direct {
		op.drawDirectly(p)
		ok, err := async.FromResult(true, cfg)
		return async.Completed(cfg, ok, err)
	}
	return launch(cfg, op.body(p))
}
