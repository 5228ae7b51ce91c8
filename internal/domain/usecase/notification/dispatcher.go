package notification

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/vooz/donation-processor/internal/domain/error"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
)

var _ notification.Notifier = (*Dispatcher)(nil)

// Dispatcher delivers notifications off the request path. Events go into a
// bounded queue drained by a fixed pool of workers.
type Dispatcher struct {
	sender       notification.Sender
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sendTimeout  coreport.Duration

	queue   chan notification.Event
	workers sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a dispatcher and starts its workers
func NewDispatcher(
	sender notification.Sender,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	workers int,
	queueSize int,
	sendTimeout coreport.Duration,
) *Dispatcher {
	if sender == nil {
		panic("Notification sender cannot be nil")
	}
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	d := &Dispatcher{
		sender:       sender,
		timeProvider: timeProvider,
		logger:       logger,
		sendTimeout:  sendTimeout,
		queue:        make(chan notification.Event, queueSize),
	}

	for i := 0; i < workers; i++ {
		d.workers.Add(1)
		go d.run(i)
	}

	logger.Info("Notification dispatcher started", map[string]any{
		"workers":    workers,
		"queue_size": queueSize,
	})
	return d
}

// Notify queues an event without waiting for delivery
func (d *Dispatcher) Notify(ctx context.Context, event notification.Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return fmt.Errorf("%w: dispatcher is shut down", errs.ErrNotificationQueueFull)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case d.queue <- event:
		d.logger.Debug("Notification queued", map[string]any{
			"event":       string(event.Type),
			"donation_id": event.Donation.ID,
		})
		return nil
	default:
		d.logger.Warn("Notification queue is full, dropping event", map[string]any{
			"event":       string(event.Type),
			"donation_id": event.Donation.ID,
		})
		return errs.ErrNotificationQueueFull
	}
}

// run is the worker loop; it exits once the queue is closed and drained
func (d *Dispatcher) run(worker int) {
	defer d.workers.Done()

	for event := range d.queue {
		d.deliver(worker, event)
	}

	d.logger.Debug("Notification worker stopped", map[string]any{
		"worker": worker,
	})
}

func (d *Dispatcher) deliver(worker int, event notification.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Recovered from panic while sending notification", map[string]any{
				"worker":      worker,
				"event":       string(event.Type),
				"donation_id": event.Donation.ID,
				"panic":       fmt.Sprint(r),
			})
		}
	}()

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if d.sendTimeout > 0 {
		ctx, cancel = d.timeProvider.WithTimeout(ctx, d.sendTimeout)
	}
	defer cancel()

	if err := d.sender.Send(ctx, event); err != nil {
		d.logger.Error("Failed to send notification", map[string]any{
			"worker":      worker,
			"event":       string(event.Type),
			"donation_id": event.Donation.ID,
			"error":       err.Error(),
		})
		return
	}

	d.logger.Debug("Notification sent", map[string]any{
		"worker":      worker,
		"event":       string(event.Type),
		"donation_id": event.Donation.ID,
	})
}

// Shutdown stops accepting events and waits until queued ones are delivered
// or ctx expires
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.logger.Info("Shutting down notification dispatcher", map[string]any{
		"pending": len(d.queue),
	})

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Notification dispatcher shut down successfully", nil)
		return nil
	case <-ctx.Done():
		d.logger.Warn("Notification dispatcher shutdown timed out", map[string]any{
			"pending": len(d.queue),
		})
		return ctx.Err()
	}
}
