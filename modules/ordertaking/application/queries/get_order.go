// Package queries contains read use cases for the order-taking module.
package queries

import (
	"context"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

// PlacedOrderDTO is the read model for a placed order.
type PlacedOrderDTO struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customer_name"`
	EmailAddress    string         `json:"email_address"`
	ShippingAddress AddressDTO     `json:"shipping_address"`
	BillingAddress  AddressDTO     `json:"billing_address"`
	Lines           []OrderLineDTO `json:"lines"`
	AmountToBill    string         `json:"amount_to_bill"`
}

type AddressDTO struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type OrderLineDTO struct {
	ID          string `json:"id"`
	ProductCode string `json:"product_code"`
	Quantity    string `json:"quantity"`
	LinePrice   string `json:"line_price"`
}

// GetPlacedOrderQuery retrieves a placed order by id.
type GetPlacedOrderQuery struct {
	OrderID string
}

type GetPlacedOrderHandler struct {
	repo domain.PlacedOrderRepository
}

func NewGetPlacedOrderHandler(repo domain.PlacedOrderRepository) *GetPlacedOrderHandler {
	return &GetPlacedOrderHandler{repo: repo}
}

func (h *GetPlacedOrderHandler) Handle(ctx context.Context, query GetPlacedOrderQuery) (*PlacedOrderDTO, error) {
	orderID, err := domain.NewOrderID(query.OrderID)
	if err != nil {
		return nil, err
	}

	order, err := h.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return toPlacedOrderDTO(order), nil
}

func toPlacedOrderDTO(order domain.PricedOrder) *PlacedOrderDTO {
	lines := make([]OrderLineDTO, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineDTO{
			ID:          line.OrderLineID.String(),
			ProductCode: line.ProductCode.Value(),
			Quantity:    line.Quantity.Amount().String(),
			LinePrice:   line.LinePrice.Value().String(),
		}
	}

	return &PlacedOrderDTO{
		ID:              order.OrderID.String(),
		CustomerName:    order.CustomerInfo.Name.FirstName.String() + " " + order.CustomerInfo.Name.LastName.String(),
		EmailAddress:    order.CustomerInfo.EmailAddress.String(),
		ShippingAddress: toAddressDTO(order.ShippingAddress),
		BillingAddress:  toAddressDTO(order.BillingAddress),
		Lines:           lines,
		AmountToBill:    order.AmountToBill.Value().String(),
	}
}

func toAddressDTO(address domain.Address) AddressDTO {
	return AddressDTO{
		AddressLine1: address.AddressLine1.String(),
		AddressLine2: address.AddressLine2.String(),
		AddressLine3: address.AddressLine3.String(),
		AddressLine4: address.AddressLine4.String(),
		City:         address.City.String(),
		ZipCode:      address.ZipCode.String(),
	}
}
