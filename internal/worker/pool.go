// Package worker provides a bounded pool for blocking, CPU- or
// IO-heavy jobs so they do not stall request-serving goroutines.
package worker

import (
	"context"
	"runtime"
	"sync"
)

// Job is a unit of blocking work that produces text.
type Job func() (string, error)

type result struct {
	text string
	err  error
}

type task struct {
	job  Job
	done chan result
}

// Pool runs submitted jobs on a fixed set of worker goroutines.
type Pool struct {
	jobs chan task
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts a pool with the given number of workers. A size of
// zero or less defaults to GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		jobs: make(chan task, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for t := range p.jobs {
		text, err := t.job()
		t.done <- result{text: text, err: err}
	}
}

// Run submits a job and waits for its result. If ctx is cancelled
// before a worker picks the job up or while it runs, Run returns the
// context error; an in-flight job still runs to completion on its
// worker but its result is discarded.
func (p *Pool) Run(ctx context.Context, job Job) (string, error) {
	t := task{job: job, done: make(chan result, 1)}

	select {
	case p.jobs <- t:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case r := <-t.done:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops accepting jobs and waits for the workers to drain.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
