package event

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

const queueSize = 256

type queued struct {
	ctx context.Context
	evt Event
}

// Bus hands events to a single worker, so consumers see them in the order
// they were raised. It also owns the broker connections behind its sinks.
type Bus struct {
	publisher Publisher
	closers   []func() error
	queue     chan queued
	done      chan struct{}
	mu        sync.RWMutex
	closed    bool
}

func NewBus(publisher Publisher, closers ...func() error) *Bus {
	b := &Bus{
		publisher: publisher,
		closers:   closers,
		queue:     make(chan queued, queueSize),
		done:      make(chan struct{}),
	}

	go b.run()

	return b
}

// Publish delivers evt synchronously, bypassing the queue.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	return b.publisher.Publish(ctx, evt)
}

// Enqueue schedules events for delivery after the request returns. It blocks
// only while the queue is full. Events raised after Close are dropped.
func (b *Bus) Enqueue(ctx context.Context, events ...Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		for _, evt := range events {
			log.Warn().Str("type", evt.Type).Str("booking_id", evt.BookingID).Msg("event bus closed, dropping event")
		}

		return
	}

	c := context.WithoutCancel(ctx)
	for _, evt := range events {
		b.queue <- queued{ctx: c, evt: evt}
	}
}

func (b *Bus) run() {
	defer close(b.done)

	for item := range b.queue {
		if err := b.publisher.Publish(item.ctx, item.evt); err != nil {
			log.Warn().Err(err).Str("type", item.evt.Type).Str("booking_id", item.evt.BookingID).Msg("booking event was not fully delivered")
		}
	}
}

// Close stops accepting events, drains the queue until ctx expires and then
// closes the broker connections. Later calls only wait for the drain.
func (b *Bus) Close(ctx context.Context) error {
	b.mu.Lock()
	closers := b.closers
	b.closers = nil

	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	select {
	case <-b.done:
	case <-ctx.Done():
		log.Warn().Int("pending", len(b.queue)).Msg("event queue not drained before shutdown")
	}

	var errs []error

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
