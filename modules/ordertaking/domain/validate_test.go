package domain_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

func TestValidateOrder_HappyPath(t *testing.T) {
	order := testOrder()
	order.ShippingAddress.AddressLine2 = "Suite 12"
	order.Lines = append(order.Lines, domain.UnvalidatedOrderLine{
		OrderLineID: "L2", ProductCode: "G123", Quantity: 2.5,
	})

	validated, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), passingAddressChecker(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if validated.OrderID.String() != "ORD1" {
		t.Errorf("OrderID = %q, want ORD1", validated.OrderID)
	}
	if got := validated.CustomerInfo.Name.FirstName.String(); got != "Jane" {
		t.Errorf("FirstName = %q, want Jane", got)
	}
	if got := validated.CustomerInfo.EmailAddress.String(); got != "jane@example.com" {
		t.Errorf("EmailAddress = %q", got)
	}
	if validated.ShippingAddress.AddressLine2.IsZero() {
		t.Error("expected AddressLine2 to be present")
	}
	if !validated.BillingAddress.AddressLine2.IsZero() {
		t.Error("expected billing AddressLine2 to be absent")
	}
	if validated.ShippingAddress.ZipCode.String() != "12345" {
		t.Errorf("ZipCode = %q, want 12345", validated.ShippingAddress.ZipCode)
	}

	if len(validated.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(validated.Lines))
	}
	unit, ok := validated.Lines[0].Quantity.(domain.UnitQuantity)
	if !ok {
		t.Fatalf("line 0 quantity = %T, want UnitQuantity", validated.Lines[0].Quantity)
	}
	if unit.Units() != 5 {
		t.Errorf("Units() = %d, want 5", unit.Units())
	}
	kg, ok := validated.Lines[1].Quantity.(domain.KilogramQuantity)
	if !ok {
		t.Fatalf("line 1 quantity = %T, want KilogramQuantity", validated.Lines[1].Quantity)
	}
	if !kg.Kilograms().Equal(decimal.NewFromFloat(2.5)) {
		t.Errorf("Kilograms() = %s, want 2.5", kg.Kilograms())
	}
}

func TestValidateOrder_EmptyLinesIsValid(t *testing.T) {
	order := testOrder()
	order.Lines = nil

	validated, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), passingAddressChecker(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(validated.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(validated.Lines))
	}
}

func TestValidateOrder_CustomerInfoFailsBeforeAddressCheck(t *testing.T) {
	addresses := passingAddressChecker()

	order := testOrder()
	order.CustomerInfo.EmailAddress = "not-an-email"

	_, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), addresses, order)

	var vErr *domain.ValidationError
	if !asValidationError(t, err, &vErr) {
		return
	}
	if vErr.Field != "EmailAddress" {
		t.Errorf("expected field 'EmailAddress', got %q", vErr.Field)
	}
	if got := addresses.calls.Load(); got != 0 {
		t.Errorf("address checker called %d times, want 0", got)
	}
}

func TestValidateOrder_AddressCheckerFailures(t *testing.T) {
	tests := []struct {
		name      string
		failWhen  func(address domain.UnvalidatedAddress) bool
		kind      domain.AddressErrorKind
		wantField string
		wantDesc  string
	}{
		{
			name:      "shipping address not found",
			failWhen:  func(a domain.UnvalidatedAddress) bool { return a.AddressLine1 == "9 Nowhere Rd" },
			kind:      domain.AddressNotFound,
			wantField: "ShippingAddress",
			wantDesc:  "address not found",
		},
		{
			name:      "billing address invalid format",
			failWhen:  func(a domain.UnvalidatedAddress) bool { return a.AddressLine1 == "?? bad ??" },
			kind:      domain.AddressInvalidFormat,
			wantField: "BillingAddress",
			wantDesc:  "address has invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addresses := &mockAddressChecker{
				checkFn: func(_ context.Context, address domain.UnvalidatedAddress) (domain.CheckedAddress, error) {
					if tt.failWhen(address) {
						return domain.CheckedAddress{}, &domain.AddressError{Kind: tt.kind}
					}
					return domain.CheckedAddress{Address: address}, nil
				},
			}

			order := testOrder()
			if tt.wantField == "ShippingAddress" {
				order.ShippingAddress.AddressLine1 = "9 Nowhere Rd"
			} else {
				order.BillingAddress.AddressLine1 = "?? bad ??"
			}

			_, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), addresses, order)

			var vErr *domain.ValidationError
			if !asValidationError(t, err, &vErr) {
				return
			}
			if vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
			if !strings.Contains(vErr.Description, tt.wantDesc) {
				t.Errorf("description %q does not mention %q", vErr.Description, tt.wantDesc)
			}
		})
	}
}

func TestValidateOrder_BothAddressesFailReportsShippingFirst(t *testing.T) {
	addresses := &mockAddressChecker{
		checkFn: func(_ context.Context, _ domain.UnvalidatedAddress) (domain.CheckedAddress, error) {
			return domain.CheckedAddress{}, &domain.AddressError{Kind: domain.AddressNotFound}
		},
	}

	_, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), addresses, testOrder())

	var vErr *domain.ValidationError
	if !asValidationError(t, err, &vErr) {
		return
	}
	if vErr.Field != "ShippingAddress" {
		t.Errorf("expected field 'ShippingAddress', got %q", vErr.Field)
	}
}

func TestValidateOrder_UnknownProductCode(t *testing.T) {
	codes := &mockProductCodeChecker{existsFn: func(code domain.ProductCode) bool {
		return code.Value() != "W404"
	}}

	order := testOrder()
	order.Lines[0].ProductCode = "W404"

	_, err := domain.ValidateOrder(context.Background(), codes, passingAddressChecker(), order)

	var vErr *domain.ValidationError
	if !asValidationError(t, err, &vErr) {
		return
	}
	if vErr.Field != "ProductCode" {
		t.Errorf("expected field 'ProductCode', got %q", vErr.Field)
	}
	if !strings.Contains(vErr.Description, "unknown product code: W404") {
		t.Errorf("unexpected description: %q", vErr.Description)
	}
}

func TestValidateOrder_FirstBadLineWins(t *testing.T) {
	order := testOrder()
	order.Lines = []domain.UnvalidatedOrderLine{
		{OrderLineID: "L1", ProductCode: "W100", Quantity: 5},
		{OrderLineID: "", ProductCode: "W100", Quantity: 5},
		{OrderLineID: "L3", ProductCode: "X999", Quantity: 5},
	}

	_, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), passingAddressChecker(), order)

	var vErr *domain.ValidationError
	if !asValidationError(t, err, &vErr) {
		return
	}
	if vErr.Field != "OrderLineId" {
		t.Errorf("expected field 'OrderLineId', got %q", vErr.Field)
	}
}

// Running the same order through validation twice yields the same result.
func TestValidateOrder_Deterministic(t *testing.T) {
	order := testOrder()

	first, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), passingAddressChecker(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.ValidateOrder(context.Background(), passingCodeChecker(), passingAddressChecker(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.OrderID != second.OrderID || len(first.Lines) != len(second.Lines) {
		t.Errorf("validation is not deterministic: %+v vs %+v", first, second)
	}
}
