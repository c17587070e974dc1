package domain

import "github.com/shopspring/decimal"

var (
	minKilogramQuantity = decimal.NewFromFloat(0.05)
	maxKilogramQuantity = decimal.NewFromInt(100)
)

// OrderQuantity is the closed set of quantity representations. The
// variant is selected by the product-code family: widgets are counted in
// units, gizmos are weighed in kilograms.
type OrderQuantity interface {
	// Amount returns the scalar magnitude of the quantity, used when
	// multiplying by a unit price.
	Amount() decimal.Decimal
	isOrderQuantity()
}

// UnitQuantity is a whole number of units in [1,1000].
type UnitQuantity struct {
	value int
}

func NewUnitQuantity(field string, quantity float64) (UnitQuantity, error) {
	return newUnitQuantity(field, decimal.NewFromFloat(quantity))
}

func newUnitQuantity(field string, quantity decimal.Decimal) (UnitQuantity, error) {
	if !quantity.IsInteger() {
		return UnitQuantity{}, newValidationError(field, "must be an integer")
	}
	v, err := createInt(field, int(quantity.IntPart()), 1, 1000)
	if err != nil {
		return UnitQuantity{}, err
	}
	return UnitQuantity{value: v}, nil
}

func (q UnitQuantity) Units() int              { return q.value }
func (q UnitQuantity) Amount() decimal.Decimal { return decimal.NewFromInt(int64(q.value)) }
func (q UnitQuantity) isOrderQuantity()        {}

// KilogramQuantity is a weight in kilograms in [0.05,100].
type KilogramQuantity struct {
	value decimal.Decimal
}

func NewKilogramQuantity(field string, quantity float64) (KilogramQuantity, error) {
	return newKilogramQuantity(field, decimal.NewFromFloat(quantity))
}

func newKilogramQuantity(field string, quantity decimal.Decimal) (KilogramQuantity, error) {
	v, err := createDecimal(field, quantity, minKilogramQuantity, maxKilogramQuantity)
	if err != nil {
		return KilogramQuantity{}, err
	}
	return KilogramQuantity{value: v}, nil
}

func (q KilogramQuantity) Kilograms() decimal.Decimal { return q.value }
func (q KilogramQuantity) Amount() decimal.Decimal    { return q.value }
func (q KilogramQuantity) isOrderQuantity()           {}

// NewOrderQuantity resolves a raw quantity into the variant matching the
// already-classified product code. The raw code string is never
// re-parsed here.
func NewOrderQuantity(field string, code ProductCode, quantity float64) (OrderQuantity, error) {
	return NewOrderQuantityFromDecimal(field, code, decimal.NewFromFloat(quantity))
}

// NewOrderQuantityFromDecimal is NewOrderQuantity for callers that
// already hold an exact decimal, such as storage rehydrating a stored
// row. No float conversion happens, so the stored digits survive intact.
func NewOrderQuantityFromDecimal(field string, code ProductCode, quantity decimal.Decimal) (OrderQuantity, error) {
	switch code.(type) {
	case WidgetCode:
		return newUnitQuantity(field, quantity)
	case GizmoCode:
		return newKilogramQuantity(field, quantity)
	default:
		return nil, newValidationError(field, "no quantity representation for product code %s", code.Value())
	}
}
