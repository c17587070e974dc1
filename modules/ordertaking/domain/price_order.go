package domain

import "fmt"

// PriceOrder computes a line price for every validated line and the
// aggregate billing amount. Any unpriceable product or bound violation
// aborts the whole operation with a *PricingError; no partially priced
// order is returned.
func PriceOrder(prices ProductPriceGetter, order ValidatedOrder) (PricedOrder, error) {
	lines := make([]PricedOrderLine, 0, len(order.Lines))
	linePrices := make([]Price, 0, len(order.Lines))

	for _, line := range order.Lines {
		unitPrice, err := prices.ProductPrice(line.ProductCode)
		if err != nil {
			return PricedOrder{}, &PricingError{
				Description: fmt.Sprintf("no price for product %s: %v", line.ProductCode.Value(), err),
			}
		}

		linePrice, err := unitPrice.Multiply(line.Quantity.Amount())
		if err != nil {
			return PricedOrder{}, &PricingError{
				Description: fmt.Sprintf("line %s: %v", line.OrderLineID, err),
			}
		}

		lines = append(lines, PricedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			LinePrice:   linePrice,
		})
		linePrices = append(linePrices, linePrice)
	}

	amountToBill, err := SumPrices(linePrices)
	if err != nil {
		return PricedOrder{}, &PricingError{
			Description: fmt.Sprintf("order total: %v", err),
		}
	}

	return PricedOrder{
		OrderID:         order.OrderID,
		CustomerInfo:    order.CustomerInfo,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		Lines:           lines,
		AmountToBill:    amountToBill,
	}, nil
}
