package worker

import (
	"context"
	"sync"

	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ProcessFunc processes one policy request.
type ProcessFunc func(ctx context.Context, policyRequestID string) error

// Dispatcher runs ProcessFunc on a bounded pool of workers. Dispatch never
// blocks: when the queue is full the job runs on its own goroutine.
//
// Jobs run on a context detached from the caller, so a finished HTTP request
// does not cancel processing it started.
type Dispatcher struct {
	process ProcessFunc
	jobs    chan string
	ctx     context.Context
	logger  *zap.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ interfaces.IProcessDispatcher = (*Dispatcher)(nil)

func NewDispatcher(ctx context.Context, process ProcessFunc, workers, queueSize int, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	d := &Dispatcher{
		process: process,
		jobs:    make(chan string, queueSize),
		ctx:     context.WithoutCancel(ctx),
		logger:  logger.Named("dispatcher"),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

func (d *Dispatcher) Name() string { return "process-dispatcher" }

func (d *Dispatcher) Dispatch(policyRequestID string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Error("[policy][dispatcher] stopped, job dropped; request stays RECEIVED",
			zap.String("policy_request_id", policyRequestID),
		)
		return
	}

	metrics.DispatcherQueueDepth.Inc()
	select {
	case d.jobs <- policyRequestID:
	default:
		metrics.DispatcherQueueDepth.Dec()
		metrics.DispatcherOverflowTotal.Inc()
		d.logger.Warn("[policy][dispatcher] queue full, running detached",
			zap.String("policy_request_id", policyRequestID),
		)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.run(policyRequestID)
		}()
	}
}

// Shutdown stops accepting jobs and waits for queued and running jobs until
// ctx is done.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for id := range d.jobs {
		metrics.DispatcherQueueDepth.Dec()
		d.run(id)
	}
}

func (d *Dispatcher) run(policyRequestID string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("[policy][dispatcher] job panicked",
				zap.String("policy_request_id", policyRequestID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := d.process(d.ctx, policyRequestID); err != nil {
		d.logger.Error("[policy][dispatcher] processing failed",
			zap.String("policy_request_id", policyRequestID),
			zap.Error(err),
		)
	}
}
