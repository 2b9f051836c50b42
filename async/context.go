package async

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// ErrCanceled is returned instead of a false result when a Config asks for
// cancellation to be reported as an error.
var ErrCanceled = errors.New("async: operation canceled")

// Progress receives progress reports of a running operation.
// Increment may be called from several goroutines at once.
type Progress interface {
	// New announces an operation made of max steps.
	New(operation string, max int)
	// Increment reports one finished step.
	Increment()
	// Complete reports that the operation stopped, finished or not.
	Complete()
}

// Context is the cooperative execution handle passed to an operation body.
// A Context belongs to one operation invocation; nested operations may run
// on the Context of their outer operation.
type Context interface {
	// MaxDegreeOfParallelism is the number of chunks that may run at once.
	MaxDegreeOfParallelism() int
	// IsCancellationRequested reports whether the operation should stop.
	IsCancellationRequested() bool
	// CanBeCanceled reports whether cancellation can ever be requested.
	CanBeCanceled() bool
	// Progress returns the progress sink, or nil.
	Progress() Progress
}

// Config configures a single run. A nil *Config means defaults: never
// canceled, automatic parallelism, no progress reporting.
type Config struct {
	// Context cancels the operation. Nil means never canceled.
	Context context.Context
	// MaxDegreeOfParallelism limits concurrent chunks. Zero or less
	// selects GOMAXPROCS.
	MaxDegreeOfParallelism int
	// Progress, when set, receives progress reports.
	Progress Progress
	// ThrowIfCanceled reports cancellation as an error wrapping
	// ErrCanceled instead of a false result.
	ThrowIfCanceled bool
	// Callback is invoked with the Future when an operation started by
	// Begin or Start completes. A panic in Callback is recovered and
	// reported by Future.CallbackPanic.
	Callback func(*Future)
	// State is exposed by Future.State.
	State any
}

type configContext struct {
	ctx      context.Context
	degree   int
	progress Progress
}

// FromConfig builds a Context from cfg. The result can be passed to
// RunWithContext or to several nested operations of one outer operation.
func FromConfig(cfg *Config) Context {
	c := &configContext{
		ctx:    context.Background(),
		degree: runtime.GOMAXPROCS(0),
	}
	if cfg == nil {
		return c
	}
	if cfg.Context != nil {
		c.ctx = cfg.Context
	}
	if cfg.MaxDegreeOfParallelism > 0 {
		c.degree = cfg.MaxDegreeOfParallelism
	}
	c.progress = cfg.Progress
	return c
}

// Default returns a Context that is never canceled and uses automatic
// parallelism.
func Default() Context {
	return FromConfig(nil)
}

func (c *configContext) MaxDegreeOfParallelism() int   { return c.degree }
func (c *configContext) IsCancellationRequested() bool { return c.ctx.Err() != nil }
func (c *configContext) CanBeCanceled() bool           { return c.ctx.Done() != nil }
func (c *configContext) Progress() Progress            { return c.progress }

// canceledError wraps ErrCanceled together with the cause reported by ctx.
func canceledError(cfg *Config) error {
	if cfg != nil && cfg.Context != nil {
		if cause := context.Cause(cfg.Context); cause != nil {
			return fmt.Errorf("%w: %w", ErrCanceled, cause)
		}
	}
	return ErrCanceled
}

// isCanceled reports whether the context of cfg has been canceled.
func isCanceled(cfg *Config) bool {
	return cfg != nil && cfg.Context != nil && cfg.Context.Err() != nil
}
