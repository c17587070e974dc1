// Package http provides HTTP handlers for the order-taking module.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/application/commands"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/application/queries"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

type Handler struct {
	placeOrder *commands.PlaceOrderHandler
	getOrder   *queries.GetPlacedOrderHandler
}

// RegisterRoutes registers the order-taking module routes to the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	placeOrder *commands.PlaceOrderHandler,
	getOrder *queries.GetPlacedOrderHandler,
) {
	h := &Handler{
		placeOrder: placeOrder,
		getOrder:   getOrder,
	}

	mux.HandleFunc("POST /orders", h.handlePlaceOrder)
	mux.HandleFunc("GET /orders/{id}", h.handleGetOrder)
}

// Request/Response DTOs

type placeOrderRequest struct {
	OrderID         string           `json:"order_id"`
	CustomerInfo    customerInfoBody `json:"customer_info"`
	ShippingAddress addressBody      `json:"shipping_address"`
	BillingAddress  addressBody      `json:"billing_address"`
	Lines           []orderLineBody  `json:"lines"`
}

type customerInfoBody struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

type addressBody struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	AddressLine3 string `json:"address_line3"`
	AddressLine4 string `json:"address_line4"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type orderLineBody struct {
	OrderLineID string  `json:"order_line_id"`
	ProductCode string  `json:"product_code"`
	Quantity    float64 `json:"quantity"`
}

type placeOrderResponse struct {
	OrderID      string `json:"order_id"`
	AmountToBill string `json:"amount_to_bill"`
	Acknowledged bool   `json:"acknowledged"`
	Billable     bool   `json:"billable"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Handlers

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	result, err := h.placeOrder.Handle(r.Context(), toCommand(req))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{
		OrderID:      result.OrderID,
		AmountToBill: result.AmountToBill,
		Acknowledged: result.Acknowledged,
		Billable:     result.Billable,
	})
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", "")
		return
	}

	order, err := h.getOrder.Handle(r.Context(), queries.GetPlacedOrderQuery{OrderID: id})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func toCommand(req placeOrderRequest) commands.PlaceOrderCommand {
	lines := make([]commands.OrderLineDTO, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLineDTO{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}
	return commands.PlaceOrderCommand{
		OrderID: req.OrderID,
		CustomerInfo: commands.CustomerInfoDTO{
			FirstName:    req.CustomerInfo.FirstName,
			LastName:     req.CustomerInfo.LastName,
			EmailAddress: req.CustomerInfo.EmailAddress,
		},
		ShippingAddress: toAddressDTO(req.ShippingAddress),
		BillingAddress:  toAddressDTO(req.BillingAddress),
		Lines:           lines,
	}
}

func toAddressDTO(body addressBody) commands.AddressDTO {
	return commands.AddressDTO{
		AddressLine1: body.AddressLine1,
		AddressLine2: body.AddressLine2,
		AddressLine3: body.AddressLine3,
		AddressLine4: body.AddressLine4,
		City:         body.City,
		ZipCode:      body.ZipCode,
	}
}

// Helper functions

func handleError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		pricingErr    *domain.PricingError
	)
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusUnprocessableEntity, validationErr.Description, validationErr.Field)
	case errors.As(err, &pricingErr):
		writeError(w, http.StatusUnprocessableEntity, pricingErr.Error(), "")
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error(), "")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	writeJSON(w, status, errorResponse{Error: message, Field: field})
}
