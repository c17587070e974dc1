package persistence

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	platformspanner "github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/spanner"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
)

// SpannerRepository persists priced orders in the PlacedOrders and
// PlacedOrderLines tables. Decimal columns are stored as STRING and run
// back through the domain constructors on read, so stored rows obey the
// same bounds as freshly validated orders.
type SpannerRepository struct {
	client *spanner.Client
}

func NewSpannerRepository(client *spanner.Client) *SpannerRepository {
	return &SpannerRepository{client: client}
}

var (
	placedOrderColumns = []string{
		"OrderID", "FirstName", "LastName", "EmailAddress",
		"ShipLine1", "ShipLine2", "ShipLine3", "ShipLine4", "ShipCity", "ShipZip",
		"BillLine1", "BillLine2", "BillLine3", "BillLine4", "BillCity", "BillZip",
		"AmountToBill",
	}
	placedOrderLineColumns = []string{
		"OrderID", "LineIndex", "OrderLineID", "ProductCode", "Quantity", "LinePrice",
	}
)

// Save persists a priced order.
// It uses an existing transaction if available, otherwise creates a new one.
func (r *SpannerRepository) Save(ctx context.Context, order domain.PricedOrder) error {
	if txn, ok := platformspanner.ReadWriteTxFromContext(ctx); ok {
		return r.saveWithTx(txn, order)
	}

	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		return r.saveWithTx(txn, order)
	})
	if err != nil {
		return fmt.Errorf("failed to save placed order: %w", err)
	}
	return nil
}

func (r *SpannerRepository) saveWithTx(tx *spanner.ReadWriteTransaction, order domain.PricedOrder) error {
	orderID := order.OrderID.String()

	// Delete existing lines first so a replay of the same order id does
	// not leave stale lines behind.
	if err := tx.BufferWrite([]*spanner.Mutation{
		spanner.Delete("PlacedOrderLines", spanner.KeyRange{
			Start: spanner.Key{orderID},
			End:   spanner.Key{orderID},
			Kind:  spanner.ClosedClosed,
		}),
	}); err != nil {
		return fmt.Errorf("failed to delete existing lines: %w", err)
	}

	mutations := []*spanner.Mutation{
		spanner.InsertOrUpdate("PlacedOrders", placedOrderColumns,
			[]interface{}{
				orderID,
				order.CustomerInfo.Name.FirstName.String(),
				order.CustomerInfo.Name.LastName.String(),
				order.CustomerInfo.EmailAddress.String(),
				order.ShippingAddress.AddressLine1.String(),
				order.ShippingAddress.AddressLine2.String(),
				order.ShippingAddress.AddressLine3.String(),
				order.ShippingAddress.AddressLine4.String(),
				order.ShippingAddress.City.String(),
				order.ShippingAddress.ZipCode.String(),
				order.BillingAddress.AddressLine1.String(),
				order.BillingAddress.AddressLine2.String(),
				order.BillingAddress.AddressLine3.String(),
				order.BillingAddress.AddressLine4.String(),
				order.BillingAddress.City.String(),
				order.BillingAddress.ZipCode.String(),
				order.AmountToBill.Value().String(),
			},
		),
	}

	for i, line := range order.Lines {
		mutations = append(mutations, spanner.InsertOrUpdate("PlacedOrderLines", placedOrderLineColumns,
			[]interface{}{
				orderID,
				int64(i),
				line.OrderLineID.String(),
				line.ProductCode.Value(),
				line.Quantity.Amount().String(),
				line.LinePrice.Value().String(),
			},
		))
	}

	return tx.BufferWrite(mutations)
}

func (r *SpannerRepository) FindByID(ctx context.Context, id domain.OrderID) (domain.PricedOrder, error) {
	reader, ok := platformspanner.ReadTransactionFromContext(ctx)
	if !ok {
		// Reads from PlacedOrders + PlacedOrderLines require a
		// ReadOnlyTransaction for point-in-time consistency.
		roTx := r.client.ReadOnlyTransaction()
		defer roTx.Close()
		reader = roTx
	}

	row, err := reader.ReadRow(ctx, "PlacedOrders", spanner.Key{id.String()}, placedOrderColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.PricedOrder{}, domain.ErrOrderNotFound
		}
		return domain.PricedOrder{}, fmt.Errorf("failed to read placed order: %w", err)
	}

	var (
		orderID, firstName, lastName, email        string
		shipLine1, shipLine2, shipLine3, shipLine4 string
		shipCity, shipZip                          string
		billLine1, billLine2, billLine3, billLine4 string
		billCity, billZip                          string
		amountToBill                               string
	)
	if err := row.Columns(
		&orderID, &firstName, &lastName, &email,
		&shipLine1, &shipLine2, &shipLine3, &shipLine4, &shipCity, &shipZip,
		&billLine1, &billLine2, &billLine3, &billLine4, &billCity, &billZip,
		&amountToBill,
	); err != nil {
		return domain.PricedOrder{}, fmt.Errorf("failed to scan placed order: %w", err)
	}

	parsedID, err := domain.NewOrderID(orderID)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("stored order id: %w", err)
	}
	customerInfo, err := toCustomerInfo(firstName, lastName, email)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("stored customer info: %w", err)
	}
	shipping, err := toAddress("ShippingAddress", shipLine1, shipLine2, shipLine3, shipLine4, shipCity, shipZip)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("stored shipping address: %w", err)
	}
	billing, err := toAddress("BillingAddress", billLine1, billLine2, billLine3, billLine4, billCity, billZip)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("stored billing address: %w", err)
	}
	amount, err := parseBillingAmount(amountToBill)
	if err != nil {
		return domain.PricedOrder{}, err
	}

	lines, err := r.readOrderLines(ctx, reader, orderID)
	if err != nil {
		return domain.PricedOrder{}, err
	}

	return domain.PricedOrder{
		OrderID:         parsedID,
		CustomerInfo:    customerInfo,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		Lines:           lines,
		AmountToBill:    amount,
	}, nil
}

func (r *SpannerRepository) readOrderLines(ctx context.Context, reader platformspanner.ReadTransaction, orderID string) ([]domain.PricedOrderLine, error) {
	iter := reader.Read(ctx, "PlacedOrderLines",
		spanner.KeyRange{
			Start: spanner.Key{orderID},
			End:   spanner.Key{orderID},
			Kind:  spanner.ClosedClosed,
		},
		placedOrderLineColumns,
	)
	defer iter.Stop()

	var lines []domain.PricedOrderLine
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read order lines: %w", err)
		}

		var storedOrderID, lineID, productCode, quantity, linePrice string
		var lineIndex int64
		if err := row.Columns(&storedOrderID, &lineIndex, &lineID, &productCode, &quantity, &linePrice); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}

		line, err := toPricedOrderLine(lineID, productCode, quantity, linePrice)
		if err != nil {
			return nil, fmt.Errorf("stored order line %d: %w", lineIndex, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func toCustomerInfo(firstName, lastName, email string) (domain.CustomerInfo, error) {
	first, err := domain.NewString50("FirstName", firstName)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	last, err := domain.NewString50("LastName", lastName)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	emailAddress, err := domain.NewEmailAddress("EmailAddress", email)
	if err != nil {
		return domain.CustomerInfo{}, err
	}
	return domain.CustomerInfo{
		Name:         domain.PersonalName{FirstName: first, LastName: last},
		EmailAddress: emailAddress,
	}, nil
}

func toAddress(field, line1, line2, line3, line4, city, zip string) (domain.Address, error) {
	l1, err := domain.NewString50(field+".AddressLine1", line1)
	if err != nil {
		return domain.Address{}, err
	}
	l2, err := domain.NewOptionalString50(field+".AddressLine2", line2)
	if err != nil {
		return domain.Address{}, err
	}
	l3, err := domain.NewOptionalString50(field+".AddressLine3", line3)
	if err != nil {
		return domain.Address{}, err
	}
	l4, err := domain.NewOptionalString50(field+".AddressLine4", line4)
	if err != nil {
		return domain.Address{}, err
	}
	c, err := domain.NewString50(field+".City", city)
	if err != nil {
		return domain.Address{}, err
	}
	z, err := domain.NewZipCode(field+".ZipCode", zip)
	if err != nil {
		return domain.Address{}, err
	}
	return domain.Address{
		AddressLine1: l1,
		AddressLine2: l2,
		AddressLine3: l3,
		AddressLine4: l4,
		City:         c,
		ZipCode:      z,
	}, nil
}

func toPricedOrderLine(lineID, productCode, quantity, linePrice string) (domain.PricedOrderLine, error) {
	id, err := domain.NewOrderLineID(lineID)
	if err != nil {
		return domain.PricedOrderLine{}, err
	}
	code, err := domain.NewProductCode("ProductCode", productCode)
	if err != nil {
		return domain.PricedOrderLine{}, err
	}

	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return domain.PricedOrderLine{}, fmt.Errorf("quantity %q: %w", quantity, err)
	}
	orderQuantity, err := domain.NewOrderQuantityFromDecimal("Quantity", code, qty)
	if err != nil {
		return domain.PricedOrderLine{}, err
	}

	price, err := decimal.NewFromString(linePrice)
	if err != nil {
		return domain.PricedOrderLine{}, fmt.Errorf("line price %q: %w", linePrice, err)
	}
	p, err := domain.NewPrice(price)
	if err != nil {
		return domain.PricedOrderLine{}, err
	}

	return domain.PricedOrderLine{
		OrderLineID: id,
		ProductCode: code,
		Quantity:    orderQuantity,
		LinePrice:   p,
	}, nil
}

func parseBillingAmount(value string) (domain.BillingAmount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return domain.BillingAmount{}, fmt.Errorf("stored billing amount %q: %w", value, err)
	}
	amount, err := domain.NewBillingAmount(d)
	if err != nil {
		return domain.BillingAmount{}, fmt.Errorf("stored billing amount: %w", err)
	}
	return amount, nil
}

// Compile-time interface check.
var _ domain.PlacedOrderRepository = (*SpannerRepository)(nil)
