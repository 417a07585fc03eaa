package ind

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// workerPool bounds fan-out to a fixed number of in-flight goroutines
// (semaphore.Weighted gating a sync.WaitGroup). The IND engine uses it to
// evaluate path-pair overlap tests in parallel without spawning one
// goroutine per pair.
type workerPool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func newWorkerPool() *workerPool {
	limit := int64(runtime.NumCPU() * 2)
	if limit < 1 {
		limit = 1
	}
	return &workerPool{sem: semaphore.NewWeighted(limit)}
}

// Go runs fn in the pool, blocking only if every slot is currently occupied.
// If ctx is cancelled before a slot frees up, fn does not run.
func (p *workerPool) Go(ctx context.Context, fn func()) {
	p.wg.Add(1)
	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.wg.Done()
		return
	}
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		fn()
	}()
}

// Wait blocks until every submitted task has completed.
func (p *workerPool) Wait() {
	p.wg.Wait()
}
