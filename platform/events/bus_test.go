package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"chimney_site_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	value string
}

func (e testEvent) EventName() string { return "test.event" }

func TestPublishSyncDeliversInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var seen []string
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		seen = append(seen, event.(testEvent).value)
		return nil
	}))

	for _, v := range []string{"a", "b"} {
		if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), value: v}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("unexpected delivery order: %v", seen)
	}
}

func TestPublishSyncReturnsHandlerError(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	want := errors.New("handler broke")
	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error { return want }))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); !errors.Is(err, want) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestPublishIsAsynchronous(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	done := make(chan string, 1)
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		done <- event.(testEvent).value
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), value: "async"})

	select {
	case got := <-done:
		if got != "async" {
			t.Fatalf("unexpected value %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("handler was never invoked")
	}
}

func TestPublishIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	// No handlers registered; must not panic or block.
	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("expected nil for unsubscribed event, got %v", err)
	}
}
