// Package commands contains write use cases for the order-taking module.
package commands

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/eventbus"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events/contracts"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/transaction"
)

const tracerName = "ordertaking"

// PlaceOrderCommand is the untrusted order as it arrives at the module
// boundary. All fields are raw strings and numbers; validation happens
// inside the workflow.
type PlaceOrderCommand struct {
	OrderID         string
	CustomerInfo    CustomerInfoDTO
	ShippingAddress AddressDTO
	BillingAddress  AddressDTO
	Lines           []OrderLineDTO
}

type CustomerInfoDTO struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

type AddressDTO struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

type OrderLineDTO struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// PlaceOrderResult summarizes a successful placement.
type PlaceOrderResult struct {
	OrderID      string
	AmountToBill string
	Acknowledged bool
	Billable     bool
}

// PlaceOrderHandler runs the place-order workflow, persists the priced
// order and publishes the resulting contract events inside one
// transaction.
type PlaceOrderHandler struct {
	workflow *domain.PlaceOrderWorkflow
	repo     domain.PlacedOrderRepository
	txScope  transaction.Scope
	registry eventbus.HandlerRegistry
}

func NewPlaceOrderHandler(
	workflow *domain.PlaceOrderWorkflow,
	repo domain.PlacedOrderRepository,
	txScope transaction.Scope,
	registry eventbus.HandlerRegistry,
) *PlaceOrderHandler {
	return &PlaceOrderHandler{
		workflow: workflow,
		repo:     repo,
		txScope:  txScope,
		registry: registry,
	}
}

// Handle executes the place order use case.
//
// The workflow itself runs outside the transaction: it talks to external
// services (address checker, acknowledgment sender) whose effects must
// not be repeated on a transaction retry. Only persistence and event
// publication happen inside the transactional scope.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PlaceOrder")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.id", cmd.OrderID),
		attribute.Int("order.line_count", len(cmd.Lines)),
	)

	placeEvents, err := h.workflow.Place(ctx, toUnvalidatedOrder(cmd))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "place order failed")
		return PlaceOrderResult{}, err
	}

	priced, acknowledged, billable := splitEvents(placeEvents)

	err = h.txScope.Execute(ctx, func(ctx context.Context) error {
		// Created inside the closure so a Spanner retry starts with an
		// empty event buffer.
		publisher := eventbus.NewTransactionalPublisher(h.registry, 10)

		if err := h.repo.Save(ctx, priced); err != nil {
			return fmt.Errorf("saving order: %w", err)
		}

		for _, event := range placeEvents {
			if err := publisher.Publish(ctx, toContractEvent(event)); err != nil {
				return fmt.Errorf("publishing event: %w", err)
			}
		}

		return publisher.Flush(ctx)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "order placement commit failed")
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:      priced.OrderID.String(),
		AmountToBill: priced.AmountToBill.Value().String(),
		Acknowledged: acknowledged,
		Billable:     billable,
	}, nil
}

func toUnvalidatedOrder(cmd PlaceOrderCommand) domain.UnvalidatedOrder {
	lines := make([]domain.UnvalidatedOrderLine, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		lines = append(lines, domain.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}
	return domain.UnvalidatedOrder{
		OrderID: cmd.OrderID,
		CustomerInfo: domain.UnvalidatedCustomerInfo{
			FirstName:    cmd.CustomerInfo.FirstName,
			LastName:     cmd.CustomerInfo.LastName,
			EmailAddress: cmd.CustomerInfo.EmailAddress,
		},
		ShippingAddress: toUnvalidatedAddress(cmd.ShippingAddress),
		BillingAddress:  toUnvalidatedAddress(cmd.BillingAddress),
		Lines:           lines,
	}
}

func toUnvalidatedAddress(dto AddressDTO) domain.UnvalidatedAddress {
	return domain.UnvalidatedAddress{
		AddressLine1: dto.AddressLine1,
		AddressLine2: dto.AddressLine2,
		AddressLine3: dto.AddressLine3,
		AddressLine4: dto.AddressLine4,
		City:         dto.City,
		ZipCode:      dto.ZipCode,
	}
}

// splitEvents extracts the priced order from the event list and reports
// which optional events were emitted. The workflow always emits exactly
// one OrderPlaced event.
func splitEvents(placeEvents []domain.PlaceOrderEvent) (priced domain.PricedOrder, acknowledged, billable bool) {
	for _, event := range placeEvents {
		switch e := event.(type) {
		case domain.OrderPlaced:
			priced = e.PricedOrder
		case domain.OrderAcknowledgmentSent:
			acknowledged = true
		case domain.BillableOrderPlaced:
			billable = true
		}
	}
	return priced, acknowledged, billable
}

// toContractEvent maps a workflow event onto the public contract form
// other modules subscribe to.
func toContractEvent(event domain.PlaceOrderEvent) events.Event {
	switch e := event.(type) {
	case domain.OrderPlaced:
		return &contracts.OrderPlacedEvent{
			BaseEvent:    events.NewBaseEvent(contracts.OrderPlacedEventType, e.OrderID.String()),
			OrderID:      e.OrderID.String(),
			CustomerName: e.CustomerInfo.Name.FirstName.String() + " " + e.CustomerInfo.Name.LastName.String(),
			LineCount:    len(e.Lines),
			AmountToBill: e.AmountToBill.Value().String(),
		}
	case domain.BillableOrderPlaced:
		return &contracts.BillableOrderPlacedEvent{
			BaseEvent:    events.NewBaseEvent(contracts.BillableOrderPlacedEventType, e.OrderID.String()),
			OrderID:      e.OrderID.String(),
			BillingZip:   e.BillingAddress.ZipCode.String(),
			AmountToBill: e.AmountToBill.Value().String(),
		}
	case domain.OrderAcknowledgmentSent:
		return &contracts.OrderAcknowledgmentSentEvent{
			BaseEvent:    events.NewBaseEvent(contracts.OrderAcknowledgmentSentEventType, e.OrderID.String()),
			OrderID:      e.OrderID.String(),
			EmailAddress: e.EmailAddress.String(),
		}
	default:
		panic(fmt.Sprintf("unhandled place order event %T", event))
	}
}
