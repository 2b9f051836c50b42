// Package async runs drawing operations through a family of equivalent
// entry conventions.
//
// An operation body is a [Func]: it receives a [Context] that carries the
// degree of parallelism, the cancellation state and an optional progress
// sink, and reports whether it ran to completion. The same body can be run
//
//   - blocking with defaults ([Run]),
//   - blocking with an explicit [Config] ([RunWithConfig]),
//   - on a caller-owned Context as part of a larger operation ([RunWithContext]),
//   - as a Begin/End pair ([Begin], [End]),
//   - or as a [Future] ([Start]).
//
// All conventions produce the same result for the same body; they differ
// only in blocking behavior and in how cancellation and errors surface.
// Cancellation is cooperative: bodies poll [Context.IsCancellationRequested]
// between independent chunks of work, typically through [ParallelFor].
package async
