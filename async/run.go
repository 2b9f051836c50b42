package async

import "fmt"

// Func is an operation body. It returns false when it stopped because
// cancellation was requested.
type Func func(ctx Context) (bool, error)

// Run runs fn on the calling goroutine with a default Context and returns
// only its error.
func Run(fn Func) error {
	_, err := fn(Default())
	return err
}

// RunWithConfig runs fn on the calling goroutine with the settings of cfg.
// It returns true when fn completed, and false when it was canceled, unless
// cfg.ThrowIfCanceled turns the cancellation into an error.
func RunWithConfig(cfg *Config, fn Func) (bool, error) {
	ctx := FromConfig(cfg)
	ok, err := fn(ctx)
	if err != nil {
		return false, err
	}
	return resolve(cfg, ok && !ctx.IsCancellationRequested())
}

// RunWithContext runs fn on the calling goroutine with a caller-owned
// Context, so a nested operation shares the parallelism, cancellation and
// progress of the operation around it.
func RunWithContext(ctx Context, fn Func) (bool, error) {
	if ctx == nil {
		ctx = Default()
	}
	ok, err := fn(ctx)
	if err != nil {
		return false, err
	}
	return ok && !ctx.IsCancellationRequested(), nil
}

// FromResult resolves the outcome of work that already ran synchronously
// without observing cancellation. A context canceled before the call still
// yields a canceled outcome; the work itself is not undone.
func FromResult(done bool, cfg *Config) (bool, error) {
	return resolve(cfg, done && !isCanceled(cfg))
}

func resolve(cfg *Config, completed bool) (bool, error) {
	if !completed && cfg != nil && cfg.ThrowIfCanceled {
		return false, canceledError(cfg)
	}
	return completed, nil
}

// guard runs fn and turns a panic into an error.
func guard(cfg *Config, fn Func) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("async: operation panicked: %v", r)
		}
	}()
	return RunWithConfig(cfg, fn)
}
