package domain

import "github.com/shopspring/decimal"

var (
	maxPrice         = decimal.NewFromInt(1000)
	maxBillingAmount = decimal.NewFromInt(10000)
)

// Price is a non-negative amount of at most 1000, the catalog limit for
// a single line.
type Price struct {
	value decimal.Decimal
}

func NewPrice(value decimal.Decimal) (Price, error) {
	v, err := createDecimal("Price", value, decimal.Zero, maxPrice)
	if err != nil {
		return Price{}, err
	}
	return Price{value: v}, nil
}

// MustNewPrice panics on an out-of-bounds value. Use only for literals
// known to be valid, e.g. seeding a catalog.
func MustNewPrice(value decimal.Decimal) Price {
	p, err := NewPrice(value)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Value() decimal.Decimal { return p.value }

// Multiply scales the price by a quantity magnitude, re-validating the
// result against the Price bounds.
func (p Price) Multiply(quantity decimal.Decimal) (Price, error) {
	return NewPrice(p.value.Mul(quantity))
}

// BillingAmount is the aggregate total owed for an order, at most 10000.
type BillingAmount struct {
	value decimal.Decimal
}

func NewBillingAmount(value decimal.Decimal) (BillingAmount, error) {
	v, err := createDecimal("BillingAmount", value, decimal.Zero, maxBillingAmount)
	if err != nil {
		return BillingAmount{}, err
	}
	return BillingAmount{value: v}, nil
}

// SumPrices folds line prices into a BillingAmount, re-validating the
// total against the BillingAmount bounds.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount(total)
}

func (b BillingAmount) Value() decimal.Decimal { return b.value }
func (b BillingAmount) IsPositive() bool       { return b.value.IsPositive() }
