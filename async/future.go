package async

import (
	"context"
	"sync/atomic"

	"github.com/gogpu/shapes/internal/parallel"
)

// Future is the handle of an operation started by Start or Begin.
type Future struct {
	done     chan struct{}
	finished atomic.Bool
	sync     bool
	state    any
	callback func(*Future)

	callbackPanic atomic.Pointer[any]

	ok  bool
	err error
}

func newFuture(cfg *Config) *Future {
	f := &Future{done: make(chan struct{})}
	if cfg != nil {
		f.state = cfg.State
		f.callback = cfg.Callback
	}
	return f
}

func (f *Future) complete(ok bool, err error) {
	f.ok, f.err = ok, err
	f.finished.Store(true)
	close(f.done)
	if f.callback != nil {
		f.runCallback()
	}
}

// runCallback invokes the callback, recovering a panic so that it cannot
// kill the pool worker. The result of the Future is already published.
func (f *Future) runCallback() {
	defer func() {
		if r := recover(); r != nil {
			f.callbackPanic.Store(&r)
		}
	}()
	f.callback(f)
}

// CallbackPanic returns the value of a panic raised by Config.Callback,
// or nil.
func (f *Future) CallbackPanic() any {
	if p := f.callbackPanic.Load(); p != nil {
		return *p
	}
	return nil
}

// Start runs fn on the shared worker pool and returns immediately. The
// result is reported by the returned Future with the semantics of
// RunWithConfig; a panic inside fn is returned as an error.
func Start(cfg *Config, fn Func) *Future {
	f := newFuture(cfg)
	work := func() { f.complete(guard(cfg, fn)) }
	if !parallel.Shared().TrySubmit(work) {
		go work()
	}
	return f
}

// Begin starts fn like Start. Pair it with End.
func Begin(cfg *Config, fn Func) *Future {
	return Start(cfg, fn)
}

// End blocks until the operation started by Begin finishes and returns
// its result.
func End(f *Future) (bool, error) {
	return f.Wait()
}

// Completed returns a Future that already holds a result. The callback of
// cfg is invoked before Completed returns.
func Completed(cfg *Config, ok bool, err error) *Future {
	f := newFuture(cfg)
	f.sync = true
	f.complete(ok, err)
	return f
}

// Failed returns a Future that already failed with err.
func Failed(cfg *Config, err error) *Future {
	return Completed(cfg, false, err)
}

// Wait blocks until the operation finishes.
func (f *Future) Wait() (bool, error) {
	<-f.done
	return f.ok, f.err
}

// Await waits like Wait but gives up when ctx is done. Giving up does not
// cancel the operation; cancel the Context of its Config for that.
func (f *Future) Await(ctx context.Context) (bool, error) {
	select {
	case <-f.done:
		return f.ok, f.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Done returns a channel that is closed when the operation finishes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// IsCompleted reports whether the operation has finished.
func (f *Future) IsCompleted() bool {
	return f.finished.Load()
}

// CompletedSynchronously reports whether the result was available before
// the Future was returned.
func (f *Future) CompletedSynchronously() bool {
	return f.sync
}

// State returns Config.State of the run.
func (f *Future) State() any {
	return f.state
}
