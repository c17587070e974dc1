package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events/contracts"
)

// OrderPlacedHandler hands placed orders over to shipping.
//
// IMPORTANT: This handler performs external side effects and currently
// runs synchronously inside the placement transaction. It must stay
// cheap; a real shipping integration would move behind a message queue.
type OrderPlacedHandler struct {
	logger *slog.Logger
}

func NewOrderPlacedHandler(logger *slog.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{logger: logger}
}

// Handle processes the OrderPlaced contract event.
func (h *OrderPlacedHandler) Handle(ctx context.Context, event events.Event) error {
	placed, ok := event.(*contracts.OrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T for %s", event, event.EventType())
	}

	// Mock hand-off to the shipping department
	h.logger.InfoContext(ctx, "notifying shipping",
		slog.String("order_id", placed.OrderID),
		slog.String("customer", placed.CustomerName),
		slog.Int("line_count", placed.LineCount))

	return nil
}
