// Package parallel provides the row-sliced worker pool backing the
// data-parallel kernel backend.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines that execute index-sliced work.
//
// Work is submitted as a half-open index range split into contiguous
// chunks, one slice of rows per task. Pixels inside a chunk run in raster
// order; chunks run in no particular order, which is safe because kernel
// work is write-disjoint per index.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// New creates a pool with the given number of workers. Zero or negative
// means GOMAXPROCS. Workers start immediately.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Run invokes fn for every index in [0, n), distributing contiguous
// chunks across the workers, and blocks until all indices are done.
// After Close, Run degrades to executing inline on the caller.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + p.workers - 1) / p.workers

	var done sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		lo, hi := start, end
		done.Add(1)
		p.tasks <- func() {
			defer done.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}
	}
	done.Wait()
}

// Close stops the workers after any queued work finishes. Close is safe
// to call multiple times; Run calls after Close execute inline. Close
// must not be called while a Run is in flight.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}
