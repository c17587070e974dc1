package eventbus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/eventbus"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
)

const testEventType events.EventType = "test.SomethingHappened"

type testEvent struct {
	events.BaseEvent
}

func newTestEvent() *testEvent {
	return &testEvent{BaseEvent: events.NewBaseEvent(testEventType, "agg-1")}
}

func TestTransactionalPublisher_FlushDispatchesInOrder(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(nil)

	var handled []string
	handler := eventbus.HandlerFunc(func(_ context.Context, event events.Event) error {
		handled = append(handled, event.EventID())
		return nil
	})
	if err := registry.Subscribe(testEventType, handler); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	publisher := eventbus.NewTransactionalPublisher(registry, 10)
	first := newTestEvent()
	second := newTestEvent()

	ctx := context.Background()
	if err := publisher.Publish(ctx, first); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := publisher.Publish(ctx, second); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if got := publisher.PendingCount(); got != 2 {
		t.Errorf("PendingCount = %d, want 2", got)
	}

	if err := publisher.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := []string{first.EventID(), second.EventID()}
	if len(handled) != len(want) || handled[0] != want[0] || handled[1] != want[1] {
		t.Errorf("handled = %v, want %v", handled, want)
	}
	if got := publisher.PendingCount(); got != 0 {
		t.Errorf("PendingCount after flush = %d, want 0", got)
	}
}

func TestTransactionalPublisher_HandlerMayPublishMore(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(nil)
	publisher := eventbus.NewTransactionalPublisher(registry, 10)

	const followUpType events.EventType = "test.FollowUp"
	var followUps int

	if err := registry.Subscribe(testEventType, eventbus.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		return publisher.Publish(ctx, &testEvent{BaseEvent: events.NewBaseEvent(followUpType, "agg-1")})
	})); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := registry.Subscribe(followUpType, eventbus.HandlerFunc(func(context.Context, events.Event) error {
		followUps++
		return nil
	})); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ctx := context.Background()
	if err := publisher.Publish(ctx, newTestEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := publisher.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if followUps != 1 {
		t.Errorf("follow-up handled %d times, want 1", followUps)
	}
}

func TestTransactionalPublisher_DepthLimit(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(nil)
	publisher := eventbus.NewTransactionalPublisher(registry, 3)

	// Handler republishes the same event type forever.
	if err := registry.Subscribe(testEventType, eventbus.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		return publisher.Publish(ctx, newTestEvent())
	})); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	ctx := context.Background()
	if err := publisher.Publish(ctx, newTestEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	err := publisher.Flush(ctx)
	if !errors.Is(err, eventbus.ErrEventProcessingDepthExceeded) {
		t.Errorf("Flush error = %v, want ErrEventProcessingDepthExceeded", err)
	}
}

func TestTransactionalPublisher_DepthCountsRoundsNotEvents(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(nil)

	var handled int
	if err := registry.Subscribe(testEventType, eventbus.HandlerFunc(func(context.Context, events.Event) error {
		handled++
		return nil
	})); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	// Five events but no follow-ups: a single round, well within a
	// depth limit of 2.
	publisher := eventbus.NewTransactionalPublisher(registry, 2)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := publisher.Publish(ctx, newTestEvent()); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}

	if err := publisher.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if handled != 5 {
		t.Errorf("handled %d events, want 5", handled)
	}
}

func TestTransactionalPublisher_HandlerErrorStopsFlush(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(nil)
	boom := errors.New("handler exploded")

	if err := registry.Subscribe(testEventType, eventbus.HandlerFunc(func(context.Context, events.Event) error {
		return boom
	})); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	publisher := eventbus.NewTransactionalPublisher(registry, 10)
	ctx := context.Background()
	if err := publisher.Publish(ctx, newTestEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if err := publisher.Flush(ctx); !errors.Is(err, boom) {
		t.Errorf("Flush error = %v, want wrapped %v", err, boom)
	}
}
