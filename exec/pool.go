// File: exec/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool dispatches tasks across worker goroutines, using lock-free local
// queues and a FIFO overflow queue as fallback. The taskRing type is
// defined in queue.go.

package exec

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
)

// Config holds pool parameters, immutable per pool.
type Config struct {
	// Workers is the number of worker goroutines. Defaults to
	// runtime.NumCPU() when <= 0.
	Workers int

	// QueueCapacity is the per-worker local queue capacity, rounded up to a
	// power of two. Defaults to 1024 when <= 0.
	QueueCapacity int

	// PinWorkers pins each worker's OS thread to a CPU, round-robin across
	// available cores. Linux only; a no-op elsewhere.
	PinWorkers bool

	// Logger receives worker diagnostics (pin failures, recovered task
	// panics). Nil disables logging.
	Logger *slog.Logger
}

// Pool manages a set of worker goroutines. Submitted tasks are placed on
// per-worker local queues round-robin, spilling into the overflow queue
// when a local queue is full.
type Pool struct {
	local   []*taskRing[func()]
	closeCh chan struct{}
	closed  atomic.Bool
	wg      sync.WaitGroup
	next    atomic.Uint64
	logger  *slog.Logger
	pin     bool

	overflowMu sync.Mutex
	overflow   *queue.Queue

	// statistics
	submitted atomic.Int64
	completed atomic.Int64
}

// NewPool creates a Pool with the given configuration and starts its
// workers.
func NewPool(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	capacity := cfg.QueueCapacity
	if capacity <= 0 {
		capacity = 1024
	}
	p := &Pool{
		local:    make([]*taskRing[func()], workers),
		closeCh:  make(chan struct{}),
		logger:   cfg.Logger,
		pin:      cfg.PinWorkers,
		overflow: queue.New(),
	}
	for i := range p.local {
		p.local[i] = newTaskRing[func()](capacity)
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run(i)
	}
	return p
}

// Submit enqueues a task for execution, returning ErrPoolClosed if the pool
// has been shut down.
func (p *Pool) Submit(task func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	p.submitted.Add(1)
	idx := int(p.next.Add(1) % uint64(len(p.local)))
	if p.local[idx].Enqueue(task) {
		return nil
	}
	p.overflowMu.Lock()
	p.overflow.Add(task)
	p.overflowMu.Unlock()
	return nil
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int { return len(p.local) }

// Stats returns basic pool metrics.
func (p *Pool) Stats() map[string]int64 {
	submitted := p.submitted.Load()
	completed := p.completed.Load()
	return map[string]int64{
		"submitted_tasks": submitted,
		"completed_tasks": completed,
		"pending_tasks":   submitted - completed,
		"num_workers":     int64(len(p.local)),
	}
}

// Close shuts the pool down and waits for workers to exit. Workers drain
// their queues before exiting, so tasks accepted by Submit are still run.
// Submit must not be called concurrently with Close.
func (p *Pool) Close() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.closeCh)
		p.wg.Wait()
	}
}

// popOverflow takes one task from the shared overflow queue.
func (p *Pool) popOverflow() (func(), bool) {
	p.overflowMu.Lock()
	defer p.overflowMu.Unlock()
	if p.overflow.Length() == 0 {
		return nil, false
	}
	return p.overflow.Remove().(func()), true
}

// run is the main loop for worker id.
func (p *Pool) run(id int) {
	defer p.wg.Done()
	if p.pin {
		pinThread(id, p.logger)
	}
	for {
		if task, ok := p.local[id].Dequeue(); ok {
			p.executeTask(task)
			continue
		}
		if task, ok := p.popOverflow(); ok {
			p.executeTask(task)
			continue
		}
		select {
		case <-p.closeCh:
			p.drain(id)
			return
		default:
			// backoff to reduce CPU spinning
			time.Sleep(time.Millisecond)
		}
	}
}

// drain runs whatever is left on the worker's local queue and the overflow
// queue during shutdown.
func (p *Pool) drain(id int) {
	for {
		if task, ok := p.local[id].Dequeue(); ok {
			p.executeTask(task)
			continue
		}
		if task, ok := p.popOverflow(); ok {
			p.executeTask(task)
			continue
		}
		return
	}
}

// executeTask runs the task and updates statistics, recovering from panics
// to keep the worker alive.
func (p *Pool) executeTask(task func()) {
	defer func() {
		if r := recover(); r != nil && p.logger != nil {
			p.logger.Warn("exec: task panicked", "panic", r)
		}
		p.completed.Add(1)
	}()
	task()
}
