package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
)

// ErrEventProcessingDepthExceeded is returned when handlers keep
// publishing follow-up events past the configured nesting limit.
var ErrEventProcessingDepthExceeded = errors.New("event processing depth exceeded")

// TransactionalPublisher buffers contract events during a use case and
// dispatches them synchronously when Flush is called, so the order
// placement and its downstream hand-offs commit or roll back together.
//
// Create one instance per transaction attempt, inside the transaction
// closure: Spanner may retry the closure on Aborted errors, and a fresh
// publisher guarantees the retry starts with an empty buffer instead of
// re-dispatching events from the failed attempt.
type TransactionalPublisher struct {
	registry HandlerRegistry
	maxDepth int

	mu      sync.Mutex
	pending []events.Event
}

// NewTransactionalPublisher creates a publisher dispatching through the
// given registry. maxDepth bounds how many rounds of follow-up events
// handlers may produce before Flush gives up (default 10).
func NewTransactionalPublisher(registry HandlerRegistry, maxDepth int) *TransactionalPublisher {
	if maxDepth <= 0 {
		maxDepth = 10
	}
	return &TransactionalPublisher{
		registry: registry,
		maxDepth: maxDepth,
	}
}

// Publish buffers an event. Nothing is dispatched until Flush.
// Implements events.Publisher.
func (p *TransactionalPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, event)
	return nil
}

// Flush dispatches the buffered events in publication order. Events the
// handlers publish while being dispatched form the next round; rounds
// continue until the buffer drains or maxDepth rounds have run. A
// handler error aborts the flush so the caller can roll the transaction
// back.
func (p *TransactionalPublisher) Flush(ctx context.Context) error {
	for depth := 0; ; depth++ {
		p.mu.Lock()
		batch := p.pending
		p.pending = nil
		p.mu.Unlock()

		if len(batch) == 0 {
			return nil
		}
		if depth >= p.maxDepth {
			return ErrEventProcessingDepthExceeded
		}

		for _, event := range batch {
			for _, handler := range p.registry.HandlersFor(event.EventType()) {
				if err := handler.Handle(ctx, event); err != nil {
					return fmt.Errorf("handling %s: %w", event.EventType(), err)
				}
			}
		}
	}
}

// PendingCount returns the number of buffered events.
func (p *TransactionalPublisher) PendingCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Compile-time interface check.
var _ events.Publisher = (*TransactionalPublisher)(nil)
