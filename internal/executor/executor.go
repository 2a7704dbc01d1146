package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Task is one opaque unit of work.
type Task func()

// Executor accepts units of work to run off the calling goroutine.
type Executor interface {
	Submit(task Task) error
}

// Pool is a bounded-queue worker pool. Tasks are queued on Submit and picked
// up by a fixed set of workers; a full queue rejects rather than blocks.
type Pool struct {
	workers     int
	queue       chan Task
	stopTimeout time.Duration
	logger      *logrus.Entry

	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.RWMutex

	statsMu sync.RWMutex
	stats   Statistics
}

// Statistics holds pool counters.
type Statistics struct {
	Submitted int64 `json:"submitted"`
	Completed int64 `json:"completed"`
	Rejected  int64 `json:"rejected"`
}

// NewPool creates a worker pool with the given worker count and queue
// capacity.
func NewPool(workers, queueSize int, stopTimeout time.Duration, logger *logrus.Entry) *Pool {
	if logger == nil {
		logger = logrus.WithField("component", "executor")
	}
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		workers:     workers,
		queue:       make(chan Task, queueSize),
		stopTimeout: stopTimeout,
		logger:      logger,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("executor is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.running = true

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker(ctx, i)
	}

	p.logger.WithField("workers", p.workers).Info("Executor started")
	return nil
}

// Stop signals the workers and waits for in-flight tasks, up to the stop
// timeout. Queued tasks not yet picked up are dropped.
func (p *Pool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return fmt.Errorf("executor is not running")
	}

	p.running = false
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("Executor stopped")
		return nil
	case <-time.After(p.stopTimeout):
		p.logger.Warn("Executor stop timed out")
		return fmt.Errorf("stop operation timed out")
	}
}

// Submit enqueues a task. It fails when the pool is stopped or the queue is
// full; it never blocks the caller.
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	running := p.running
	p.mu.RUnlock()

	if !running {
		return fmt.Errorf("executor is not running")
	}

	select {
	case p.queue <- task:
		p.updateStats(func(s *Statistics) { s.Submitted++ })
		return nil
	default:
		p.updateStats(func(s *Statistics) { s.Rejected++ })
		return fmt.Errorf("task queue is full")
	}
}

// QueueDepth returns the number of tasks waiting to be picked up.
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

// QueueCapacity returns the queue's total capacity.
func (p *Pool) QueueCapacity() int {
	return cap(p.queue)
}

// GetStatistics returns a snapshot of the pool counters.
func (p *Pool) GetStatistics() Statistics {
	p.statsMu.RLock()
	defer p.statsMu.RUnlock()
	return p.stats
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	log := p.logger.WithField("worker", id)
	log.Debug("Worker started")
	defer log.Debug("Worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.queue:
			if !ok {
				return
			}
			task()
			p.updateStats(func(s *Statistics) { s.Completed++ })
		}
	}
}

func (p *Pool) updateStats(updateFn func(*Statistics)) {
	p.statsMu.Lock()
	defer p.statsMu.Unlock()
	updateFn(&p.stats)
}
