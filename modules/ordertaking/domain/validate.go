package domain

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ValidateOrder turns an untrusted order into a ValidatedOrder, or
// returns the first *ValidationError encountered in the fixed evaluation
// order: order id, customer info, shipping address, billing address,
// order lines. The two address checks are independent and run
// concurrently; the reported failure still follows the fixed order.
func ValidateOrder(ctx context.Context, codes ProductCodeChecker, addresses AddressChecker, order UnvalidatedOrder) (ValidatedOrder, error) {
	orderID, err := NewOrderID(order.OrderID)
	if err != nil {
		return ValidatedOrder{}, err
	}

	customerInfo, err := toCustomerInfo(order.CustomerInfo)
	if err != nil {
		return ValidatedOrder{}, err
	}

	var (
		shippingAddress, billingAddress Address
		shippingErr, billingErr         error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		shippingAddress, shippingErr = toAddress(gctx, addresses, "ShippingAddress", order.ShippingAddress)
		return shippingErr
	})
	g.Go(func() error {
		billingAddress, billingErr = toAddress(gctx, addresses, "BillingAddress", order.BillingAddress)
		return billingErr
	})
	_ = g.Wait()
	if shippingErr != nil {
		return ValidatedOrder{}, shippingErr
	}
	if billingErr != nil {
		return ValidatedOrder{}, billingErr
	}

	lines := make([]ValidatedOrderLine, 0, len(order.Lines))
	for _, raw := range order.Lines {
		line, err := toValidatedOrderLine(codes, raw)
		if err != nil {
			return ValidatedOrder{}, err
		}
		lines = append(lines, line)
	}

	return ValidatedOrder{
		OrderID:         orderID,
		CustomerInfo:    customerInfo,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
		Lines:           lines,
	}, nil
}

func toCustomerInfo(raw UnvalidatedCustomerInfo) (CustomerInfo, error) {
	firstName, err := NewString50("FirstName", raw.FirstName)
	if err != nil {
		return CustomerInfo{}, err
	}
	lastName, err := NewString50("LastName", raw.LastName)
	if err != nil {
		return CustomerInfo{}, err
	}
	email, err := NewEmailAddress("EmailAddress", raw.EmailAddress)
	if err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{
		Name:         PersonalName{FirstName: firstName, LastName: lastName},
		EmailAddress: email,
	}, nil
}

// toAddress calls the external checker, maps its failure kinds onto
// validation errors tagged with the address field, then converts the
// checked address into the internal Address value.
func toAddress(ctx context.Context, addresses AddressChecker, field string, raw UnvalidatedAddress) (Address, error) {
	checked, err := addresses.CheckAddressExists(ctx, raw)
	if err != nil {
		var addrErr *AddressError
		if errors.As(err, &addrErr) {
			return Address{}, newValidationError(field, "%s", addrErr.Kind)
		}
		return Address{}, newValidationError(field, "address check failed: %v", err)
	}

	line1, err := NewString50(field+".AddressLine1", checked.Address.AddressLine1)
	if err != nil {
		return Address{}, err
	}
	line2, err := NewOptionalString50(field+".AddressLine2", checked.Address.AddressLine2)
	if err != nil {
		return Address{}, err
	}
	line3, err := NewOptionalString50(field+".AddressLine3", checked.Address.AddressLine3)
	if err != nil {
		return Address{}, err
	}
	line4, err := NewOptionalString50(field+".AddressLine4", checked.Address.AddressLine4)
	if err != nil {
		return Address{}, err
	}
	city, err := NewString50(field+".City", checked.Address.City)
	if err != nil {
		return Address{}, err
	}
	zip, err := NewZipCode(field+".ZipCode", checked.Address.ZipCode)
	if err != nil {
		return Address{}, err
	}

	return Address{
		AddressLine1: line1,
		AddressLine2: line2,
		AddressLine3: line3,
		AddressLine4: line4,
		City:         city,
		ZipCode:      zip,
	}, nil
}

// toValidatedOrderLine validates one raw line: line id, product code
// (classified, pattern-checked, then confirmed against the catalog),
// and the quantity variant matching the classified code.
func toValidatedOrderLine(codes ProductCodeChecker, raw UnvalidatedOrderLine) (ValidatedOrderLine, error) {
	lineID, err := NewOrderLineID(raw.OrderLineID)
	if err != nil {
		return ValidatedOrderLine{}, err
	}

	code, err := NewProductCode("ProductCode", raw.ProductCode)
	if err != nil {
		return ValidatedOrderLine{}, err
	}
	if !codes.ProductCodeExists(code) {
		return ValidatedOrderLine{}, newValidationError("ProductCode", "unknown product code: %s", code.Value())
	}

	quantity, err := NewOrderQuantity("Quantity", code, raw.Quantity)
	if err != nil {
		return ValidatedOrderLine{}, err
	}

	return ValidatedOrderLine{
		OrderLineID: lineID,
		ProductCode: code,
		Quantity:    quantity,
	}, nil
}
