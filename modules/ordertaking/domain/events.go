package domain

// PlaceOrderEvent is the closed set of events a successful placement can
// emit. Consumers switch on the concrete type.
type PlaceOrderEvent interface {
	isPlaceOrderEvent()
}

// OrderAcknowledgmentSent records that the acknowledgment letter was
// delivered to the customer.
type OrderAcknowledgmentSent struct {
	OrderID      OrderID
	EmailAddress EmailAddress
}

func (OrderAcknowledgmentSent) isPlaceOrderEvent() {}

// OrderPlaced is the priced order itself, emitted for every placement.
type OrderPlaced struct {
	PricedOrder
}

func (OrderPlaced) isPlaceOrderEvent() {}

// BillableOrderPlaced is emitted only when there is something to bill.
type BillableOrderPlaced struct {
	OrderID        OrderID
	BillingAddress Address
	AmountToBill   BillingAmount
}

func (BillableOrderPlaced) isPlaceOrderEvent() {}

// CreateEvents derives the final event list from the priced order and
// the optional acknowledgment. The order is fixed: acknowledgment event,
// then the placed order, then the billing event. The billing event is
// emitted iff the amount to bill is strictly positive.
func CreateEvents(order PricedOrder, ack OrderAcknowledgmentSent, acknowledged bool) []PlaceOrderEvent {
	events := make([]PlaceOrderEvent, 0, 3)

	if acknowledged {
		events = append(events, ack)
	}

	events = append(events, OrderPlaced{PricedOrder: order})

	if order.AmountToBill.IsPositive() {
		events = append(events, BillableOrderPlaced{
			OrderID:        order.OrderID,
			BillingAddress: order.BillingAddress,
			AmountToBill:   order.AmountToBill,
		})
	}

	return events
}
