package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamento_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublish_DeliversToSubscribersInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var order []int
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 1)
		return nil
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, e Event) error {
		order = append(order, 2)
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected handlers in registration order, got %v", order)
	}
}

func TestPublish_UnknownEventIsNoop(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	called := false
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, e Event) error {
		called = true
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "other.happened"})

	if called {
		t.Fatal("handler must not run for an unsubscribed event")
	}
}

func TestPublish_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var secondCalled bool
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, e Event) error {
		return errors.New("handler fault")
	}))
	bus.Subscribe("thing.happened", HandlerFunc(func(ctx context.Context, e Event) error {
		secondCalled = true
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "thing.happened"})

	if !secondCalled {
		t.Fatal("a failing handler must not block later handlers")
	}
}

func TestNewBaseEvent_SetsTimestamp(t *testing.T) {
	before := time.Now()
	event := NewBaseEvent()
	after := time.Now()

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Fatalf("timestamp %v outside [%v, %v]", event.OccurredAt(), before, after)
	}
}
