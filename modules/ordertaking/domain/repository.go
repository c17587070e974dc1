package domain

import "context"

// PlacedOrderRepository persists orders that completed the pipeline.
type PlacedOrderRepository interface {
	// Save stores a priced order. Placing the same order id again
	// overwrites the previous record.
	Save(ctx context.Context, order PricedOrder) error
	// FindByID returns a stored priced order or ErrOrderNotFound.
	FindByID(ctx context.Context, id OrderID) (PricedOrder, error)
}
