package expense

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/expense-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
)

// DefaultQueueSize is the number of pending mutations buffered before Submit blocks
const DefaultQueueSize = 100

// WriteFunc is a mutation executed by the queue worker
type WriteFunc func(ctx context.Context) error

// WriteQueue runs every mutation of the transaction table on a single worker
// goroutine, so concurrent requests are applied one at a time in arrival order.
type WriteQueue struct {
	logger coreport.Logger

	queue chan *writeRequest
	wg    sync.WaitGroup

	// Guards closed and the send side of queue
	mu     sync.RWMutex
	closed bool
}

// writeRequest represents a queued mutation
type writeRequest struct {
	ctx        context.Context
	op         string
	fn         WriteFunc
	resultChan chan error
}

// NewWriteQueue creates a queue and starts its worker
func NewWriteQueue(logger coreport.Logger, size int) *WriteQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}

	q := &WriteQueue{
		logger: logger,
		queue:  make(chan *writeRequest, size),
	}

	q.wg.Add(1)
	go q.run()

	return q
}

// Submit enqueues fn and waits until it has run or ctx is done.
// op names the mutation in log output.
func (q *WriteQueue) Submit(ctx context.Context, op string, fn WriteFunc) error {
	req := &writeRequest{
		ctx:        ctx,
		op:         op,
		fn:         fn,
		resultChan: make(chan error, 1),
	}

	if err := q.enqueue(ctx, req); err != nil {
		return err
	}

	select {
	case err := <-req.resultChan:
		return err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for write result", map[string]any{
			"operation": op,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (q *WriteQueue) enqueue(ctx context.Context, req *writeRequest) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return errs.ErrQueueClosed
	}

	select {
	case q.queue <- req:
		q.logger.Debug("Write enqueued", map[string]any{
			"operation": req.op,
		})
		return nil
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing write", map[string]any{
			"operation": req.op,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// run is the worker loop; it exits once the queue is closed and drained
func (q *WriteQueue) run() {
	defer q.wg.Done()

	q.logger.Info("Write queue worker started", nil)

	for req := range q.queue {
		// The caller gave up before its turn came
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- err
			continue
		}

		q.logger.Debug("Processing queued write", map[string]any{
			"operation": req.op,
		})
		req.resultChan <- req.fn(req.ctx)
	}

	q.logger.Info("Write queue worker stopped", nil)
}

// Shutdown rejects new writes, lets queued ones finish and stops the worker
func (q *WriteQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()

	q.logger.Info("Shutting down write queue", nil)
	q.wg.Wait()
	q.logger.Info("Write queue shut down successfully", nil)
}
