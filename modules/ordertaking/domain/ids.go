package domain

// OrderID identifies an order. IDs are supplied by the caller, not
// generated here; the constraint is the same as for any bounded string.
type OrderID struct {
	value string
}

func NewOrderID(value string) (OrderID, error) {
	v, err := createString("OrderId", value, 50)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{value: v}, nil
}

func (id OrderID) String() string { return id.value }
func (id OrderID) IsZero() bool   { return id.value == "" }

// OrderLineID identifies a line within an order.
type OrderLineID struct {
	value string
}

func NewOrderLineID(value string) (OrderLineID, error) {
	v, err := createString("OrderLineId", value, 50)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: v}, nil
}

func (id OrderLineID) String() string { return id.value }
func (id OrderLineID) IsZero() bool   { return id.value == "" }
