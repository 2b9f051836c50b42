// Package shapes draws vector primitives into in-memory pixel buffers on the CPU.
//
// # Overview
//
// shapes strokes lines, polylines, Bézier chains, polygons, rectangles,
// ellipses, arcs, pies, rounded rectangles and arbitrary paths directly into a
// [Bitmap]. Every primitive goes through the same two-lane pipeline:
//
//   - a direct lane for simple thin strokes (opaque or non-blended color,
//     no antialiasing, no transformation, no quantizer or ditherer), which
//     writes pixels without building a [Path];
//   - a general lane that builds a [Path], optionally transforms it and hands
//     it to a [Rasterizer] that handles antialiasing, alpha blending, wide
//     pens, quantizing and dithering.
//
// # Quick Start
//
//	bmp := shapes.NewPixmap(256, 256)
//
//	// Blocking call with default options.
//	err := shapes.Ellipse(bmp, shapes.RGB32(255, 0, 0), shapes.R(10, 10, 100, 60), nil).Draw()
//
//	// Antialiased, 4 workers, cancellable.
//	opts := &shapes.DrawingOptions{AntiAliasing: true, AlphaBlending: true, Transformation: shapes.Identity()}
//	ok, err := shapes.Ellipse(bmp, shapes.NewPen(shapes.RGBA32(0, 0, 255, 128), 3), shapes.R(10, 10, 100, 60), opts).
//		DrawWithConfig(&async.Config{Context: ctx, MaxDegreeOfParallelism: 4})
//
// # Execution conventions
//
// A shape constructor ([Line], [Ellipse], [Outline], ...) validates its
// arguments and returns an [Operation]. The operation can then be executed
// through five equivalent conventions: [Operation.Draw] (blocking, default
// settings), [Operation.DrawWithConfig] (blocking, explicit parallelism,
// cancellation and progress), [Operation.DrawWithContext] (nested in a larger
// operation), [Operation.Begin] with [async.End], and [Operation.DrawAsync]
// (future based). All of them produce identical pixels.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X grows right, Y grows down
//   - With [PixelOffsetNone] integer coordinates address pixel centers
//   - Rectangle bounds are inclusive: a zero-sized rectangle is one pixel
//   - Angles are in degrees, 0 points along +X, positive sweeps are clockwise
package shapes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
