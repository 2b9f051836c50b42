package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProgress struct {
	mu        sync.Mutex
	operation string
	max       int
	steps     int
	completed bool
	onStep    func(step int)
}

func (p *countingProgress) New(operation string, max int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operation, p.max = operation, max
}

func (p *countingProgress) Increment() {
	p.mu.Lock()
	p.steps++
	step := p.steps
	p.mu.Unlock()
	if p.onStep != nil {
		p.onStep(step)
	}
}

func (p *countingProgress) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = true
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestFromConfig_Defaults(t *testing.T) {
	ctx := FromConfig(nil)
	assert.GreaterOrEqual(t, ctx.MaxDegreeOfParallelism(), 1)
	assert.False(t, ctx.IsCancellationRequested())
	assert.False(t, ctx.CanBeCanceled())
	assert.Nil(t, ctx.Progress())

	ctx = FromConfig(&Config{MaxDegreeOfParallelism: 3, Context: canceledContext()})
	assert.Equal(t, 3, ctx.MaxDegreeOfParallelism())
	assert.True(t, ctx.IsCancellationRequested())
	assert.True(t, ctx.CanBeCanceled())
}

func TestRun(t *testing.T) {
	var ran bool
	err := Run(func(ctx Context) (bool, error) {
		ran = true
		return true, nil
	})
	require.NoError(t, err)
	assert.True(t, ran)

	boom := errors.New("boom")
	err = Run(func(Context) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestRunWithConfig_Cancellation(t *testing.T) {
	body := func(ctx Context) (bool, error) {
		return !ctx.IsCancellationRequested(), nil
	}

	ok, err := RunWithConfig(nil, body)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RunWithConfig(&Config{Context: canceledContext()}, body)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = RunWithConfig(&Config{Context: canceledContext(), ThrowIfCanceled: true}, body)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithConfig_CanceledAfterLastChunk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ok, err := RunWithConfig(&Config{Context: ctx}, func(Context) (bool, error) {
		cancel()
		return true, nil
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunWithContext_SharesContext(t *testing.T) {
	progress := &countingProgress{}
	outer := FromConfig(&Config{MaxDegreeOfParallelism: 2, Progress: progress})

	ok, err := RunWithContext(outer, func(ctx Context) (bool, error) {
		assert.Same(t, outer, ctx)
		return ParallelFor(ctx, "inner", 4, func(int) error { return nil })
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, progress.steps)
	assert.Equal(t, "inner", progress.operation)
}

func TestFromResult(t *testing.T) {
	ok, err := FromResult(true, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FromResult(true, &Config{Context: canceledContext()})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = FromResult(true, &Config{Context: canceledContext(), ThrowIfCanceled: true})
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestStart(t *testing.T) {
	release := make(chan struct{})
	f := Start(&Config{State: "token"}, func(Context) (bool, error) {
		<-release
		return true, nil
	})
	assert.False(t, f.IsCompleted())
	assert.False(t, f.CompletedSynchronously())
	assert.Equal(t, "token", f.State())

	close(release)
	ok, err := f.Wait()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, f.IsCompleted())
}

func TestStart_Panic(t *testing.T) {
	f := Start(nil, func(Context) (bool, error) {
		panic("broken rasterizer")
	})
	ok, err := f.Wait()
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken rasterizer")
}

func TestBeginEnd_Callback(t *testing.T) {
	called := make(chan *Future, 1)
	f := Begin(&Config{Callback: func(f *Future) { called <- f }}, func(Context) (bool, error) {
		return true, nil
	})

	ok, err := End(f)
	require.NoError(t, err)
	assert.True(t, ok)

	select {
	case got := <-called:
		assert.Same(t, f, got)
	case <-time.After(time.Second):
		t.Fatal("callback not invoked")
	}
}

func TestCallbackPanicIsRecovered(t *testing.T) {
	called := make(chan struct{})
	cfg := &Config{Callback: func(*Future) {
		close(called)
		panic("callback exploded")
	}}

	f := Start(cfg, func(Context) (bool, error) { return true, nil })
	<-called
	ok, err := f.Wait()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Eventually(t, func() bool { return f.CallbackPanic() != nil }, time.Second, time.Millisecond)
	assert.Equal(t, "callback exploded", f.CallbackPanic())

	// the pool keeps serving work
	ok, err = Start(nil, func(Context) (bool, error) { return true, nil }).Wait()
	require.NoError(t, err)
	assert.True(t, ok)

	f = Completed(&Config{Callback: func(*Future) { panic(42) }}, true, nil)
	assert.Equal(t, 42, f.CallbackPanic())
}

func TestFuture_Await(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := Start(nil, func(Context) (bool, error) {
		<-release
		return true, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	ok, err := f.Await(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompletedAndFailed(t *testing.T) {
	var calls int
	cfg := &Config{Callback: func(*Future) { calls++ }}

	f := Completed(cfg, true, nil)
	assert.True(t, f.IsCompleted())
	assert.True(t, f.CompletedSynchronously())
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	ok, err := Failed(nil, boom).Wait()
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestParallelFor_RunsEveryChunk(t *testing.T) {
	for _, degree := range []int{1, 4} {
		var seen [32]atomic.Int32
		progress := &countingProgress{}
		ctx := FromConfig(&Config{MaxDegreeOfParallelism: degree, Progress: progress})

		ok, err := ParallelFor(ctx, "chunks", len(seen), func(i int) error {
			seen[i].Add(1)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ok)
		for i := range seen {
			assert.Equal(t, int32(1), seen[i].Load(), "chunk %d, degree %d", i, degree)
		}
		assert.Equal(t, 32, progress.max)
		assert.Equal(t, 32, progress.steps)
		assert.True(t, progress.completed)
	}
}

func TestParallelFor_RespectsDegree(t *testing.T) {
	var running, peak atomic.Int32
	ctx := FromConfig(&Config{MaxDegreeOfParallelism: 2})

	_, err := ParallelFor(ctx, "limited", 16, func(int) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestParallelFor_CancelBetweenChunks(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	defer cancel()
	progress := &countingProgress{onStep: func(int) { cancel() }}
	ctx := FromConfig(&Config{Context: c, MaxDegreeOfParallelism: 1, Progress: progress})

	var ran []int
	ok, err := ParallelFor(ctx, "cancel", 10, func(i int) error {
		ran = append(ran, i)
		return nil
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{0}, ran)
	assert.True(t, progress.completed)
}

func TestParallelFor_Error(t *testing.T) {
	boom := errors.New("boom")
	ctx := FromConfig(&Config{MaxDegreeOfParallelism: 4})
	ok, err := ParallelFor(ctx, "error", 8, func(i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestParallelFor_Empty(t *testing.T) {
	ok, err := ParallelFor(Default(), "empty", 0, func(int) error {
		t.Error("body called for zero chunks")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ok)
}
