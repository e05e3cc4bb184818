package exec

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var (
	// ErrPoolClosed is returned by Pool.Execute after Close.
	ErrPoolClosed = errors.New("exec: pool is closed")
	// ErrNoWorkers is returned by NewPool for a worker count below one.
	ErrNoWorkers = errors.New("exec: pool needs at least one worker")
)

// DefaultWorkers is the number of available hardware execution units.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// PoolStats is a point-in-time snapshot of pool activity.
type PoolStats struct {
	Submitted  int64 // items accepted by Execute
	Completed  int64 // items finished, panicked ones included
	Panicked   int64 // items that panicked
	InFlight   int64 // items executing right now
	QueueDepth int   // items waiting
	Workers    int
}

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

type poolConfig struct {
	name       string
	logger     zerolog.Logger
	registerer prometheus.Registerer
}

// WithName sets the pool name used in logs and the "pool" metric label.
func WithName(name string) PoolOption {
	return func(c *poolConfig) {
		c.name = name
	}
}

// WithLogger sets the pool logger. The default discards everything.
func WithLogger(l zerolog.Logger) PoolOption {
	return func(c *poolConfig) {
		c.logger = l
	}
}

// WithRegisterer registers the pool collectors on r. They are unregistered on Close.
func WithRegisterer(r prometheus.Registerer) PoolOption {
	return func(c *poolConfig) {
		c.registerer = r
	}
}

// Pool is an Executor backed by a fixed set of worker goroutines consuming one
// shared queue. Items are taken from the end they were last appended to, so a
// burst of submissions runs newest first.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	running bool

	workers   int
	wg        sync.WaitGroup
	closeOnce sync.Once

	name       string
	log        zerolog.Logger
	metrics    *poolMetrics
	registerer prometheus.Registerer

	submitted atomic.Int64
	completed atomic.Int64
	panicked  atomic.Int64
	inFlight  atomic.Int64
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int, opts ...PoolOption) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrNoWorkers, workers)
	}

	cfg := poolConfig{name: "default", logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		running:    true,
		workers:    workers,
		name:       cfg.name,
		log:        cfg.logger.With().Str("component", "pool").Str("pool", cfg.name).Logger(),
		metrics:    newPoolMetrics(cfg.name),
		registerer: cfg.registerer,
	}
	p.cond = sync.NewCond(&p.mu)

	if p.registerer != nil {
		if err := p.metrics.register(p.registerer); err != nil {
			return nil, fmt.Errorf("registering pool metrics: %w", err)
		}
	}
	p.metrics.workers.Set(float64(workers))

	p.wg.Add(workers)
	for i := range workers {
		go p.work(i)
	}

	p.log.Debug().Int("workers", workers).Msg("pool started")
	return p, nil
}

// MustNewPool is NewPool that panics on error.
func MustNewPool(workers int, opts ...PoolOption) *Pool {
	p, err := NewPool(workers, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Execute queues work and wakes one idle worker.
func (p *Pool) Execute(work func()) error {
	if work == nil {
		return errors.New("exec: nil work item")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return ErrPoolClosed
	}
	p.queue = append(p.queue, work)
	p.submitted.Add(1)
	p.metrics.queueDepth.Set(float64(len(p.queue)))
	p.cond.Signal()
	return nil
}

// NewHandle returns a handle whose Yield reschedules the calling goroutine.
func (p *Pool) NewHandle() *Handle {
	return NewHandleWithYield(runtime.Gosched)
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	p.mu.Lock()
	for {
		for len(p.queue) == 0 && p.running {
			p.cond.Wait()
		}
		// stopped and drained
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}

		last := len(p.queue) - 1
		item := p.queue[last]
		p.queue[last] = nil
		p.queue = p.queue[:last]
		p.metrics.queueDepth.Set(float64(last))
		p.mu.Unlock()

		p.run(id, item)

		p.mu.Lock()
	}
}

func (p *Pool) run(id int, item func()) {
	p.inFlight.Add(1)
	p.metrics.inFlight.Inc()

	result := "completed"
	defer func() {
		if r := recover(); r != nil {
			result = "panicked"
			p.panicked.Add(1)
			p.log.Error().Int("worker", id).Interface("panic", r).Msg("work item panicked")
		}
		p.inFlight.Add(-1)
		p.completed.Add(1)
		p.metrics.inFlight.Dec()
		p.metrics.tasks.WithLabelValues(result).Inc()
	}()

	item()
}

// Close stops accepting work, lets the workers drain the queue and waits for
// them to exit. Safe to call multiple times.
//
// Close must not be called from a work item of the same pool: it would wait
// on its own worker forever. A work item that needs to stop its pool should
// call go p.Close() instead.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.running = false
		pending := len(p.queue)
		p.cond.Broadcast()
		p.mu.Unlock()

		p.log.Debug().Int("pending", pending).Msg("pool stopping")
		p.wg.Wait()

		if p.registerer != nil {
			p.metrics.unregister(p.registerer)
		}
		p.log.Debug().Int64("completed", p.completed.Load()).Msg("pool stopped")
	})
}

func (p *Pool) Workers() int {
	return p.workers
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	depth := len(p.queue)
	p.mu.Unlock()

	return PoolStats{
		Submitted:  p.submitted.Load(),
		Completed:  p.completed.Load(),
		Panicked:   p.panicked.Load(),
		InFlight:   p.inFlight.Load(),
		QueueDepth: depth,
		Workers:    p.workers,
	}
}

var _ Executor = (*Pool)(nil)
var _ HandleProvider = (*Pool)(nil)
