// Package event_publisher_port defines interfaces for publishing and observing domain events.
package event_publisher_port

import (
	"context"

	"feedhub/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=event_publisher_port.go -destination=../../mocks/mock_event_publisher_port.go -package=mocks

// EventHandler receives events delivered by the bus.
type EventHandler func(ctx context.Context, event domain.Event) error

// EventPublisherPort publishes domain events.
type EventPublisherPort interface {
	Publish(ctx context.Context, event domain.Event) error
}

// EventSubscriberPort registers handlers for domain events.
type EventSubscriberPort interface {
	Subscribe(name string, handler EventHandler)
}
