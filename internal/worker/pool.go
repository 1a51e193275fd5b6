package worker

import (
	"context"
	"sync"
)

// Job is a unit of work, typically one claim verification
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job execution
type Result interface {
	GetError() error
}

// Pool executes jobs on a fixed number of worker goroutines. Submit
// order and result order are unrelated; callers that need ordering
// carry an index in their jobs.
//
// Channels are bounded, so callers must drain Results while
// submitting (or use Wait, which submits nothing further).
type Pool struct {
	workers    int
	jobs       chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	jobsMu   sync.RWMutex
	jobsDone bool

	closeJobsOnce    sync.Once
	closeResultsOnce sync.Once
	drainOnce        sync.Once
}

// NewPool creates a worker pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobs:       make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution. Submissions after Done or
// Shutdown are dropped.
func (p *Pool) Submit(job Job) {
	// The read lock keeps Done from closing the queue mid-send.
	p.jobsMu.RLock()
	defer p.jobsMu.RUnlock()
	if p.jobsDone {
		return
	}

	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Done signals that no further jobs will be submitted
func (p *Pool) Done() {
	p.closeJobsOnce.Do(func() {
		p.jobsMu.Lock()
		p.jobsDone = true
		close(p.jobs)
		p.jobsMu.Unlock()
	})
}

// Results returns the result channel. It closes once Done has been
// called and every submitted job has finished.
func (p *Pool) Results() <-chan Result {
	p.drainOnce.Do(func() {
		go func() {
			p.wg.Wait()
			p.closeResults()
		}()
	})
	return p.results
}

// Wait closes the queue, waits for all submitted jobs to finish and
// returns their results. Only safe when all jobs are already queued.
func (p *Pool) Wait() []Result {
	p.Done()

	var results []Result
	for result := range p.Results() {
		results = append(results, result)
	}
	return results
}

// Shutdown cancels outstanding work and stops the workers
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeResultsOnce.Do(func() {
		close(p.results)
	})
}
