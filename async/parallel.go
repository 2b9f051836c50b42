package async

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParallelFor runs body for every chunk index in [0, count), at most
// ctx.MaxDegreeOfParallelism() at a time. Chunks must touch disjoint data.
//
// Cancellation is polled before each chunk starts; a started chunk always
// runs to the end. When cancellation stops the loop ParallelFor returns
// false, and the chunks that finished stay applied. Progress, when present,
// is told about count steps and receives one Increment per finished chunk.
func ParallelFor(ctx Context, operation string, count int, body func(i int) error) (bool, error) {
	if count <= 0 {
		return !ctx.IsCancellationRequested(), nil
	}

	progress := ctx.Progress()
	if progress != nil {
		progress.New(operation, count)
		defer progress.Complete()
	}

	degree := ctx.MaxDegreeOfParallelism()
	if degree <= 1 || count == 1 {
		for i := range count {
			if ctx.IsCancellationRequested() {
				return false, nil
			}
			if err := body(i); err != nil {
				return false, err
			}
			if progress != nil {
				progress.Increment()
			}
		}
		return true, nil
	}

	var canceled atomic.Bool
	g := new(errgroup.Group)
	g.SetLimit(degree)
	for i := range count {
		if ctx.IsCancellationRequested() {
			canceled.Store(true)
			break
		}
		g.Go(func() error {
			if canceled.Load() || ctx.IsCancellationRequested() {
				canceled.Store(true)
				return nil
			}
			if err := body(i); err != nil {
				return err
			}
			if progress != nil {
				progress.Increment()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return !canceled.Load(), nil
}
