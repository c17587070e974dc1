// Package persistence implements the placed order repository.
package persistence

import (
	"context"
	"sync"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

// InMemoryRepository implements PlacedOrderRepository using in-memory storage.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.PricedOrder
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]domain.PricedOrder),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, order domain.PricedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderID.String()] = order
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.OrderID) (domain.PricedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id.String()]
	if !exists {
		return domain.PricedOrder{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// Compile-time interface check.
var _ domain.PlacedOrderRepository = (*InMemoryRepository)(nil)
