package pool

import (
	"context"
	"sync"
)

// Pool runs jobs on n goroutines bound to a context. Once the context is
// done, Submit refuses new work and queued jobs are dropped.
type Pool struct {
	ctx  context.Context
	jobs chan func(context.Context)
	wg   sync.WaitGroup
	once sync.Once
}

func New(ctx context.Context, n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		ctx:  ctx,
		jobs: make(chan func(context.Context), n*2),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		if f == nil || p.ctx.Err() != nil {
			continue
		}
		f(p.ctx)
	}
}

// Submit queues f. It reports false when the pool's context is already done.
func (p *Pool) Submit(f func(context.Context)) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobs <- f:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Close stops accepting jobs. Safe to call more than once.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.jobs) })
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
