package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted jobs on a fixed set of goroutines. A job that panics is reported to
// sentry and does not take its worker down.
type Pool struct {
	queue   chan func()
	workers sync.WaitGroup
	jobs    sync.WaitGroup
	once    sync.Once
}

// New starts a pool with n workers. n <= 0 uses one worker per CPU.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.workers.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.workers.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer p.jobs.Done()
	defer sentry.Recover()
	f()
}

// Submit queues f. To be used by a function that may be CPU intensive.
func (p *Pool) Submit(f func()) {
	p.jobs.Add(1)
	p.queue <- f
}

// Wait blocks until every submitted job returned.
func (p *Pool) Wait() {
	p.jobs.Wait()
}

// Close stops the workers once the queue drained. Submit must not be called afterwards.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.workers.Wait()
}
