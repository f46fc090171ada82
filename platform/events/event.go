// Package events carries in-process domain events between modules so the
// publisher (the contact pipeline) never imports its subscribers.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event carried on the bus.
type Event interface {
	// EventName identifies the event type for subscription matching.
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent supplies the timestamp common to all events.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler processes events of a single type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes domain events to registered handlers.
type Bus interface {
	// Publish dispatches the event to each handler in its own goroutine;
	// handler errors are logged, never returned to the publisher.
	Publish(ctx context.Context, event Event)

	// PublishSync runs handlers inline and returns the first error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler under the name the event reports
	// from EventName.
	Subscribe(eventName string, handler Handler)
}
