package domain

import "context"

// PlaceOrderWorkflow sequences validation, pricing, acknowledgment and
// event derivation over one order. The five external collaborators are
// injected at construction so callers and tests control every side
// effect.
type PlaceOrderWorkflow struct {
	codes     ProductCodeChecker
	addresses AddressChecker
	prices    ProductPriceGetter
	letters   AcknowledgmentLetterCreator
	sender    AcknowledgmentSender
}

func NewPlaceOrderWorkflow(
	codes ProductCodeChecker,
	addresses AddressChecker,
	prices ProductPriceGetter,
	letters AcknowledgmentLetterCreator,
	sender AcknowledgmentSender,
) *PlaceOrderWorkflow {
	return &PlaceOrderWorkflow{
		codes:     codes,
		addresses: addresses,
		prices:    prices,
		letters:   letters,
		sender:    sender,
	}
}

// Place runs the full pipeline over one unvalidated order. A validation
// or pricing failure short-circuits the remaining stages and is returned
// as the workflow error; a failed acknowledgment delivery only omits the
// acknowledgment event.
func (w *PlaceOrderWorkflow) Place(ctx context.Context, order UnvalidatedOrder) ([]PlaceOrderEvent, error) {
	validated, err := ValidateOrder(ctx, w.codes, w.addresses, order)
	if err != nil {
		return nil, err
	}

	priced, err := PriceOrder(w.prices, validated)
	if err != nil {
		return nil, err
	}

	ack, acknowledged := AcknowledgeOrder(ctx, w.letters, w.sender, priced)

	return CreateEvents(priced, ack, acknowledged), nil
}
