package domain

import "context"

// AcknowledgeOrder renders the acknowledgment letter and asks the sender
// to deliver it. The second return value reports whether the letter was
// sent; NotSent only suppresses the acknowledgment event and never fails
// the workflow.
func AcknowledgeOrder(ctx context.Context, letters AcknowledgmentLetterCreator, sender AcknowledgmentSender, order PricedOrder) (OrderAcknowledgmentSent, bool) {
	letter := letters.CreateOrderAcknowledgmentLetter(order)

	ack := OrderAcknowledgment{
		EmailAddress: order.CustomerInfo.EmailAddress,
		Letter:       letter,
	}

	if sender.SendOrderAcknowledgment(ctx, ack) != Sent {
		return OrderAcknowledgmentSent{}, false
	}

	return OrderAcknowledgmentSent{
		OrderID:      order.OrderID,
		EmailAddress: order.CustomerInfo.EmailAddress,
	}, true
}
