// Package dispatcher provides a bounded asynchronous work queue that can be flushed.
package dispatcher

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Dispatcher hands submitted items to a fixed set of workers.
// Submit never blocks; Flush waits until everything submitted so far has been handled.
type Dispatcher[T any] struct {
	handle  func(context.Context, T)
	queue   chan T
	workers int
	logger  *zap.Logger

	mu      sync.Mutex
	pending int
	idle    chan struct{}
	stopped bool

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Dispatcher with the given queue capacity and worker count.
func New[T any](logger *zap.Logger, handle func(context.Context, T), capacity, workers int) *Dispatcher[T] {
	if workers < 1 {
		workers = 1
	}
	idle := make(chan struct{})
	close(idle)

	return &Dispatcher[T]{
		handle:  handle,
		queue:   make(chan T, capacity),
		workers: workers,
		logger:  logger,
		idle:    idle,
		stop:    make(chan struct{}),
	}
}

// Start launches the workers.
func (d *Dispatcher[T]) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(ctx)
	}
}

// Stop rejects new items, lets the workers drain the queue and waits for them.
// Canceling the Start context has the same effect, with handlers seeing the canceled context.
func (d *Dispatcher[T]) Stop() {
	d.reject()
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	d.wg.Wait()
}

func (d *Dispatcher[T]) reject() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

// Submit queues an item. It reports false when the queue is full or the dispatcher is stopped.
func (d *Dispatcher[T]) Submit(item T) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}

	select {
	case d.queue <- item:
	default:
		return false
	}

	if d.pending == 0 {
		d.idle = make(chan struct{})
	}
	d.pending++
	return true
}

// Flush blocks until every submitted item has been handled or ctx is done.
func (d *Dispatcher[T]) Flush(ctx context.Context) error {
	d.mu.Lock()
	idle := d.idle
	d.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-idle:
		return nil
	}
}

// Pending returns the number of submitted items not yet handled.
func (d *Dispatcher[T]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Dispatcher[T]) run(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			d.reject()
			d.drain(ctx)
			return
		case item := <-d.queue:
			d.process(ctx, item)
		case <-d.stop:
			d.drain(ctx)
			return
		}
	}
}

// drain handles what is left in the queue. Submit no longer accepts items, so the queue only shrinks.
func (d *Dispatcher[T]) drain(ctx context.Context) {
	for {
		select {
		case item := <-d.queue:
			d.process(ctx, item)
		default:
			return
		}
	}
}

func (d *Dispatcher[T]) process(ctx context.Context, item T) {
	defer d.done()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatcher handler panicked", zap.Any("panic", r))
		}
	}()
	d.handle(ctx, item)
}

func (d *Dispatcher[T]) done() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending--
	if d.pending == 0 {
		close(d.idle)
	}
}
