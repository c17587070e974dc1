// Package contracts defines public event contracts for inter-module communication.
// Modules should import event types from here, NOT from other module's domain packages.
package contracts

import "github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"

const (
	OrderPlacedEventType             events.EventType = "ordertaking.OrderPlaced"
	BillableOrderPlacedEventType     events.EventType = "ordertaking.BillableOrderPlaced"
	OrderAcknowledgmentSentEventType events.EventType = "ordertaking.OrderAcknowledgmentSent"
)

// OrderPlacedEvent is published for every successfully placed order.
type OrderPlacedEvent struct {
	events.BaseEvent
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	LineCount    int    `json:"line_count"`
	AmountToBill string `json:"amount_to_bill"`
}

// BillableOrderPlacedEvent is published only when the order carries a
// strictly positive billing amount.
type BillableOrderPlacedEvent struct {
	events.BaseEvent
	OrderID      string `json:"order_id"`
	BillingZip   string `json:"billing_zip"`
	AmountToBill string `json:"amount_to_bill"`
}

// OrderAcknowledgmentSentEvent is published when the acknowledgment letter
// was delivered to the customer.
type OrderAcknowledgmentSentEvent struct {
	events.BaseEvent
	OrderID      string `json:"order_id"`
	EmailAddress string `json:"email_address"`
}
