package domain

import "context"

// External collaborators consumed, not implemented, by the pipeline.
// They are injected into PlaceOrderWorkflow so tests can substitute
// doubles.

// CheckedAddress is an address the external checker has confirmed. It is
// structurally identical to the raw address; the wrapper type is the
// confirmation marker.
type CheckedAddress struct {
	Address UnvalidatedAddress
}

// AddressChecker verifies that an address exists. Failures are
// *AddressError values distinguishing invalid format from not found.
// The check may be a remote call, hence the context.
type AddressChecker interface {
	CheckAddressExists(ctx context.Context, address UnvalidatedAddress) (CheckedAddress, error)
}

// ProductCodeChecker reports whether a well-formed product code refers
// to a known product.
type ProductCodeChecker interface {
	ProductCodeExists(code ProductCode) bool
}

// ProductPriceGetter returns the unit price for a product code. A code
// that passed the existence check but cannot be priced is an error; the
// pricer treats it as fatal.
type ProductPriceGetter interface {
	ProductPrice(code ProductCode) (Price, error)
}

// AcknowledgmentLetter is the rendered acknowledgment body. Its content
// is opaque to the pipeline; no validation is performed on it.
type AcknowledgmentLetter string

// OrderAcknowledgment pairs the letter with the address it goes to.
type OrderAcknowledgment struct {
	EmailAddress EmailAddress
	Letter       AcknowledgmentLetter
}

// AcknowledgmentLetterCreator renders an acknowledgment letter from a
// priced order.
type AcknowledgmentLetterCreator interface {
	CreateOrderAcknowledgmentLetter(order PricedOrder) AcknowledgmentLetter
}

// SendResult is the two-state outcome of an acknowledgment delivery.
// NotSent is a recognized outcome, not an error.
type SendResult int

const (
	Sent SendResult = iota
	NotSent
)

func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}

// AcknowledgmentSender delivers an acknowledgment to the customer.
type AcknowledgmentSender interface {
	SendOrderAcknowledgment(ctx context.Context, ack OrderAcknowledgment) SendResult
}
