package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/persistence"
)

func pricedOrder(t *testing.T, id string, amount int64) domain.PricedOrder {
	t.Helper()

	orderID, err := domain.NewOrderID(id)
	if err != nil {
		t.Fatal(err)
	}
	amountToBill, err := domain.NewBillingAmount(decimal.NewFromInt(amount))
	if err != nil {
		t.Fatal(err)
	}
	return domain.PricedOrder{OrderID: orderID, AmountToBill: amountToBill}
}

func TestInMemoryRepository_SaveAndFind(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	ctx := context.Background()

	order := pricedOrder(t, "ORD1", 50)
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save: %v", err)
	}

	found, err := repo.FindByID(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.OrderID != order.OrderID {
		t.Errorf("found order id = %q, want %q", found.OrderID, order.OrderID)
	}
	if !found.AmountToBill.Value().Equal(decimal.NewFromInt(50)) {
		t.Errorf("AmountToBill = %s, want 50", found.AmountToBill.Value())
	}
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	repo := persistence.NewInMemoryRepository()

	order := pricedOrder(t, "MISSING", 0)
	_, err := repo.FindByID(context.Background(), order.OrderID)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestInMemoryRepository_SaveOverwrites(t *testing.T) {
	repo := persistence.NewInMemoryRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, pricedOrder(t, "ORD1", 50)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	updated := pricedOrder(t, "ORD1", 75)
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("Save: %v", err)
	}

	found, err := repo.FindByID(ctx, updated.OrderID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !found.AmountToBill.Value().Equal(decimal.NewFromInt(75)) {
		t.Errorf("AmountToBill = %s, want 75", found.AmountToBill.Value())
	}
}
