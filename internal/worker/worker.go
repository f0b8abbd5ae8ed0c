package worker

import (
	"context"
	"errors"
	"sync"

	"upperskills/internal/logging"
)

var (
	// ErrStopped 表示 pool 已停止，不再接受新工作
	ErrStopped = errors.New("worker: pool stopped")
	// ErrQueueFull 所有 worker 忙碌且佇列已滿
	ErrQueueFull = errors.New("worker: queue full")
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// queue 為等待中工作的緩衝大小；滿了時 Submit 立即回傳 ErrQueueFull
func NewPool(n, queue int, log logging.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	if log == nil {
		log = logging.Nop()
	}
	p := &pool{jobs: make(chan Task, queue), log: log}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
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
	log     logging.Logger
}

// run 執行單一工作，panic 只記錄不影響其他工作
func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error(context.Background(), "worker task panicked", "panic", r)
		}
	}()
	job()
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop 停止接受新工作並等待佇列中的工作全部完成
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

// FakePool 同步執行工作，方便測試
type FakePool struct {
	mu        sync.Mutex
	Submitted int
	Err       error
}

func (f *FakePool) Submit(t Task) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	f.Submitted++
	f.mu.Unlock()
	if t != nil {
		t()
	}
	return nil
}

func (f *FakePool) Stop() {}
