package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishInvokesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	d.Subscribe(EventEmployeeCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmployeeCreated}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("unexpected call order: %v", calls)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var called bool
	d.Subscribe(EventEmployeeDeleted, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventEmployeeDeleted, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmployeeDeleted}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !called {
		t.Fatalf("second handler not invoked after first failed")
	}
}

func TestDispatcher_IgnoresUnrelatedEventTypes(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	var called bool
	d.Subscribe(EventEmployeeUpdated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEmployeeCreated}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if called {
		t.Fatalf("handler invoked for unrelated event type")
	}
}
