package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	// Submit queues t without blocking. It returns false when the queue is
	// full or the pool has been stopped; the task is dropped in that case.
	Submit(t Task) bool
	// Stop waits for queued tasks to finish. Further Submits are rejected.
	Stop()
}

// NewPool creates a pool with n workers and a queue of the given size.
// n<=0 defaults to 1, queue<0 defaults to 0.
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Inline runs every task on the caller's goroutine. Useful in tests and
// when no background workers are configured.
type Inline struct{}

func (Inline) Submit(t Task) bool {
	if t != nil {
		t()
	}
	return true
}

func (Inline) Stop() {}
