// Package domain models the lifecycle of an order-placement request: an
// untrusted order is validated field by field, priced against a product
// catalog, and turned into a set of placement events. Each lifecycle
// stage is its own immutable type; the leaf fields are proof-carrying
// value objects, so holding a ValidatedOrder or PricedOrder is a static
// guarantee that every constraint holds.
package domain

// UnvalidatedOrder is the raw caller-supplied order. It carries no
// guarantees beyond its structural shape.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// PersonalName is a customer's validated name parts.
type PersonalName struct {
	FirstName String50
	LastName  String50
}

// CustomerInfo is the validated customer identity attached to an order.
type CustomerInfo struct {
	Name         PersonalName
	EmailAddress EmailAddress
}

// Address is a checked and validated postal address. AddressLine2
// through AddressLine4 are optional; absence is their zero value.
type Address struct {
	AddressLine1 String50
	AddressLine2 String50
	AddressLine3 String50
	AddressLine4 String50
	City         String50
	ZipCode      ZipCode
}

// ValidatedOrderLine is an order line whose id, product code and
// quantity have all passed validation.
type ValidatedOrderLine struct {
	OrderLineID OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
}

// ValidatedOrder is produced only by ValidateOrder and never mutated.
type ValidatedOrder struct {
	OrderID         OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress Address
	BillingAddress  Address
	Lines           []ValidatedOrderLine
}

// PricedOrderLine is a validated line with its computed line price.
type PricedOrderLine struct {
	OrderLineID OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
	LinePrice   Price
}

// PricedOrder is produced only by PriceOrder from a ValidatedOrder.
type PricedOrder struct {
	OrderID         OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress Address
	BillingAddress  Address
	Lines           []PricedOrderLine
	AmountToBill    BillingAmount
}
