// Package catalog provides the product catalog backing the order-taking
// workflow's existence and price checks.
package catalog

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

// InMemoryCatalog holds product prices keyed by product code. It serves
// both the existence check and the price lookup of the workflow.
type InMemoryCatalog struct {
	mu     sync.RWMutex
	prices map[string]domain.Price
}

func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{
		prices: make(map[string]domain.Price),
	}
}

// Add registers a product with its unit price. A second Add for the same
// code replaces the price.
func (c *InMemoryCatalog) Add(code string, price decimal.Decimal) error {
	p, err := domain.NewPrice(price)
	if err != nil {
		return fmt.Errorf("catalog price for %s: %w", code, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[code] = p
	return nil
}

// ProductCodeExists implements domain.ProductCodeChecker.
func (c *InMemoryCatalog) ProductCodeExists(code domain.ProductCode) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.prices[code.Value()]
	return ok
}

// ProductPrice implements domain.ProductPriceGetter.
func (c *InMemoryCatalog) ProductPrice(code domain.ProductCode) (domain.Price, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	price, ok := c.prices[code.Value()]
	if !ok {
		return domain.Price{}, fmt.Errorf("no price for product %s", code.Value())
	}
	return price, nil
}

// Compile-time interface checks.
var (
	_ domain.ProductCodeChecker = (*InMemoryCatalog)(nil)
	_ domain.ProductPriceGetter = (*InMemoryCatalog)(nil)
)
