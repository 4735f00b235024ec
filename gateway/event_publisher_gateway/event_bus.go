// Package event_publisher_gateway provides the process-wide domain event bus and its stream forwarder.
package event_publisher_gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"feedhub/domain"
	"feedhub/port/event_publisher_port"
	"feedhub/utils/logger"
	"feedhub/utils/metrics"
)

const defaultBufferSize = 64

var ErrBusClosed = errors.New("event bus closed")

type delivery struct {
	ctx   context.Context
	event domain.Event
}

type subscriber struct {
	name    string
	handler event_publisher_port.EventHandler
	queue   chan delivery
}

// EventBus fans events out to subscribers. Every subscriber has its own buffered
// queue and goroutine; a full queue drops the event for that subscriber only.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []*subscriber
	closed      bool
	bufferSize  int
	wg          sync.WaitGroup
}

func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &EventBus{bufferSize: bufferSize}
}

func (b *EventBus) Subscribe(name string, handler event_publisher_port.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		logger.Logger.Warn("Subscribe on closed event bus ignored", "subscriber", name)
		return
	}

	sub := &subscriber{
		name:    name,
		handler: handler,
		queue:   make(chan delivery, b.bufferSize),
	}
	b.subscribers = append(b.subscribers, sub)

	b.wg.Add(1)
	go b.run(sub)
}

// Publish hands event to every subscriber without waiting for handlers to run.
// Handlers see ctx values but not its cancellation.
func (b *EventBus) Publish(ctx context.Context, event domain.Event) error {
	if event == nil {
		return errors.New("event is nil")
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	d := delivery{ctx: context.WithoutCancel(ctx), event: event}
	for _, sub := range b.subscribers {
		select {
		case sub.queue <- d:
		default:
			metrics.RecordEvent(event.EventType(), sub.name, "dropped")
			logger.Logger.WarnContext(ctx, "Event dropped, subscriber queue full",
				"event_type", event.EventType(),
				"subscriber", sub.name)
		}
	}
	return nil
}

// Close stops accepting events and waits until queued events are handled.
func (b *EventBus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, sub := range b.subscribers {
		close(sub.queue)
	}
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *EventBus) run(sub *subscriber) {
	defer b.wg.Done()
	for d := range sub.queue {
		b.deliver(sub, d)
	}
}

func (b *EventBus) deliver(sub *subscriber, d delivery) {
	eventType := d.event.EventType()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("subscriber panic: %v", r)
			}
		}()
		return sub.handler(d.ctx, d.event)
	}()

	if err != nil {
		metrics.RecordEvent(eventType, sub.name, "error")
		logger.Logger.ErrorContext(d.ctx, "Event handler failed",
			"event_type", eventType,
			"subscriber", sub.name,
			"error", err)
		return
	}
	metrics.RecordEvent(eventType, sub.name, "ok")
}
