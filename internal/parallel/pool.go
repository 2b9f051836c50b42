// Package parallel runs drawing operations off the calling goroutine.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that runs submitted tasks.
//
// Every worker owns a queue. An idle worker steals from the queues of the
// other workers before it blocks, so one long operation does not hold back
// the tasks queued behind it.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}
	wg   sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
	// pending counts tasks accepted but not yet finished.
	pending atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

var (
	sharedOnce sync.Once
	shared     *WorkerPool
)

// Shared returns the process-wide pool, creating it on first use.
// The shared pool is never closed.
func Shared() *WorkerPool {
	sharedOnce.Do(func() {
		shared = NewWorkerPool(0)
	})
	return shared
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			p.run(work)

		default:
			if stolen := p.steal(id); stolen != nil {
				p.run(stolen)
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				p.run(work)
			}
		}
	}
}

func (p *WorkerPool) run(work func()) {
	if work == nil {
		return
	}
	defer p.pending.Add(-1)
	work()
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			p.run(work)
		default:
			return
		}
	}
}

// steal takes work from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// shortestQueue returns the index of the least loaded worker queue.
func (p *WorkerPool) shortestQueue() int {
	minLen, minIdx := len(p.workQueues[0]), 0
	for i := 1; i < p.workers; i++ {
		if l := len(p.workQueues[i]); l < minLen {
			minLen, minIdx = l, i
		}
	}
	return minIdx
}

// Submit queues fn on the least loaded worker, blocking while that queue
// is full. It reports false when the pool is closed and fn was not queued.
func (p *WorkerPool) Submit(fn func()) bool {
	if fn == nil || !p.running.Load() {
		return false
	}

	p.pending.Add(1)
	select {
	case p.workQueues[p.shortestQueue()] <- fn:
		return true
	case <-p.done:
		p.pending.Add(-1)
		return false
	}
}

// TrySubmit queues fn without blocking. It reports false when the pool is
// closed or the chosen queue is full; the caller then runs fn elsewhere.
func (p *WorkerPool) TrySubmit(fn func()) bool {
	if fn == nil || !p.running.Load() {
		return false
	}

	p.pending.Add(1)
	select {
	case p.workQueues[p.shortestQueue()] <- fn:
		return true
	default:
		p.pending.Add(-1)
		return false
	}
}

// Close stops accepting new work, runs everything already queued and
// stops all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Pending returns the number of accepted tasks that have not finished.
func (p *WorkerPool) Pending() int {
	return int(p.pending.Load())
}
