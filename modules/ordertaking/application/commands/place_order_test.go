package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/eventbus"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/application/commands"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events/contracts"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/transaction"
)

// --- Mocks ---

type stubCodeChecker struct{}

func (stubCodeChecker) ProductCodeExists(domain.ProductCode) bool { return true }

type stubAddressChecker struct{}

func (stubAddressChecker) CheckAddressExists(_ context.Context, address domain.UnvalidatedAddress) (domain.CheckedAddress, error) {
	return domain.CheckedAddress{Address: address}, nil
}

type stubPriceGetter struct{ price decimal.Decimal }

func (s stubPriceGetter) ProductPrice(domain.ProductCode) (domain.Price, error) {
	return domain.NewPrice(s.price)
}

type stubLetterCreator struct{}

func (stubLetterCreator) CreateOrderAcknowledgmentLetter(domain.PricedOrder) domain.AcknowledgmentLetter {
	return "Thank you for your order"
}

type stubSender struct{ result domain.SendResult }

func (s stubSender) SendOrderAcknowledgment(context.Context, domain.OrderAcknowledgment) domain.SendResult {
	return s.result
}

type mockRepository struct {
	saved   []domain.PricedOrder
	saveErr error
}

func (m *mockRepository) Save(_ context.Context, order domain.PricedOrder) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, order)
	return nil
}

func (m *mockRepository) FindByID(context.Context, domain.OrderID) (domain.PricedOrder, error) {
	return domain.PricedOrder{}, domain.ErrOrderNotFound
}

type capturingHandler struct {
	received []events.Event
}

func (h *capturingHandler) Handle(_ context.Context, event events.Event) error {
	h.received = append(h.received, event)
	return nil
}

// --- Helpers ---

func newHandler(t *testing.T, repo *mockRepository, price float64, result domain.SendResult) (*commands.PlaceOrderHandler, *capturingHandler) {
	t.Helper()

	workflow := domain.NewPlaceOrderWorkflow(
		stubCodeChecker{},
		stubAddressChecker{},
		stubPriceGetter{price: decimal.NewFromFloat(price)},
		stubLetterCreator{},
		stubSender{result: result},
	)

	registry := eventbus.NewEventHandlerRegistry(nil)
	captured := &capturingHandler{}
	for _, eventType := range []events.EventType{
		contracts.OrderPlacedEventType,
		contracts.BillableOrderPlacedEventType,
		contracts.OrderAcknowledgmentSentEventType,
	} {
		if err := registry.Subscribe(eventType, captured); err != nil {
			t.Fatalf("subscribe %s: %v", eventType, err)
		}
	}

	return commands.NewPlaceOrderHandler(workflow, repo, transaction.Passthrough{}, registry), captured
}

func testCommand() commands.PlaceOrderCommand {
	return commands.PlaceOrderCommand{
		OrderID: "ORD1",
		CustomerInfo: commands.CustomerInfoDTO{
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jane@example.com",
		},
		ShippingAddress: commands.AddressDTO{AddressLine1: "1 Main St", City: "Springfield", ZipCode: "12345"},
		BillingAddress:  commands.AddressDTO{AddressLine1: "1 Main St", City: "Springfield", ZipCode: "12345"},
		Lines: []commands.OrderLineDTO{
			{OrderLineID: "L1", ProductCode: "W100", Quantity: 5},
		},
	}
}

// --- Tests ---

func TestPlaceOrderHandler_PersistsAndPublishes(t *testing.T) {
	repo := &mockRepository{}
	handler, captured := newHandler(t, repo, 10, domain.Sent)

	result, err := handler.Handle(context.Background(), testCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OrderID != "ORD1" {
		t.Errorf("OrderID = %q, want ORD1", result.OrderID)
	}
	if result.AmountToBill != "50" {
		t.Errorf("AmountToBill = %q, want 50", result.AmountToBill)
	}
	if !result.Acknowledged || !result.Billable {
		t.Errorf("result flags = %+v, want acknowledged and billable", result)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved order, got %d", len(repo.saved))
	}
	if repo.saved[0].OrderID.String() != "ORD1" {
		t.Errorf("saved order id = %q", repo.saved[0].OrderID)
	}

	if len(captured.received) != 3 {
		t.Fatalf("expected 3 published events, got %d", len(captured.received))
	}
	wantTypes := []events.EventType{
		contracts.OrderAcknowledgmentSentEventType,
		contracts.OrderPlacedEventType,
		contracts.BillableOrderPlacedEventType,
	}
	for i, want := range wantTypes {
		if got := captured.received[i].EventType(); got != want {
			t.Errorf("event[%d] type = %s, want %s", i, got, want)
		}
	}

	placed, ok := captured.received[1].(*contracts.OrderPlacedEvent)
	if !ok {
		t.Fatalf("event[1] = %T, want *contracts.OrderPlacedEvent", captured.received[1])
	}
	if placed.CustomerName != "Jane Doe" || placed.LineCount != 1 || placed.AmountToBill != "50" {
		t.Errorf("unexpected order placed payload: %+v", placed)
	}
	if placed.AggregateID() != "ORD1" {
		t.Errorf("AggregateID = %q, want ORD1", placed.AggregateID())
	}
}

func TestPlaceOrderHandler_ZeroTotalSkipsBillingEvent(t *testing.T) {
	repo := &mockRepository{}
	handler, captured := newHandler(t, repo, 0, domain.NotSent)

	result, err := handler.Handle(context.Background(), testCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Acknowledged || result.Billable {
		t.Errorf("result flags = %+v, want neither acknowledged nor billable", result)
	}
	if len(captured.received) != 1 {
		t.Fatalf("expected only the order placed event, got %d events", len(captured.received))
	}
	if got := captured.received[0].EventType(); got != contracts.OrderPlacedEventType {
		t.Errorf("event type = %s, want %s", got, contracts.OrderPlacedEventType)
	}
}

func TestPlaceOrderHandler_ValidationFailureSkipsPersistence(t *testing.T) {
	repo := &mockRepository{}
	handler, captured := newHandler(t, repo, 10, domain.Sent)

	cmd := testCommand()
	cmd.OrderID = ""

	_, err := handler.Handle(context.Background(), cmd)

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("expected no saved orders, got %d", len(repo.saved))
	}
	if len(captured.received) != 0 {
		t.Errorf("expected no published events, got %d", len(captured.received))
	}
}

func TestPlaceOrderHandler_SaveFailureAbortsPublication(t *testing.T) {
	repo := &mockRepository{saveErr: errors.New("storage unavailable")}
	handler, captured := newHandler(t, repo, 10, domain.Sent)

	_, err := handler.Handle(context.Background(), testCommand())
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if len(captured.received) != 0 {
		t.Errorf("expected no published events after save failure, got %d", len(captured.received))
	}
}
