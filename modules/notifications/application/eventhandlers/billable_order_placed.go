package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events/contracts"
)

// BillableOrderPlacedHandler hands billable orders over to billing.
type BillableOrderPlacedHandler struct {
	logger *slog.Logger
}

func NewBillableOrderPlacedHandler(logger *slog.Logger) *BillableOrderPlacedHandler {
	return &BillableOrderPlacedHandler{logger: logger}
}

// Handle processes the BillableOrderPlaced contract event.
func (h *BillableOrderPlacedHandler) Handle(ctx context.Context, event events.Event) error {
	billable, ok := event.(*contracts.BillableOrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload %T for %s", event, event.EventType())
	}

	// Mock hand-off to the billing department
	h.logger.InfoContext(ctx, "notifying billing",
		slog.String("order_id", billable.OrderID),
		slog.String("billing_zip", billable.BillingZip),
		slog.String("amount_to_bill", billable.AmountToBill))

	return nil
}
