package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order view from the database.
// Rehydrates the aggregate to compute the price breakdown, so the view
// always shows the same figures the confirmation flow charges.
type GetOrderQueryHandler struct {
	db         *gorm.DB
	calculator services.PriceCalculator
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:         db,
		calculator: services.NewPriceCalculator(),
	}
}

// Handle executes the query to retrieve the order view.
// Returns an object-not-found error when no order matches the ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]GetOrderQueryItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, GetOrderQueryItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal(),
		})
	}

	resp := GetOrderQueryResponse{
		ID:            aggregate.ID(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		Status:        aggregate.Status(),
		CreatedAt:     aggregate.CreatedAt(),
		ConfirmedAt:   aggregate.ConfirmedAt(),
		Items:         items,
	}

	if len(items) > 0 {
		breakdown, calcErr := h.calculator.Calculate(aggregate)
		if calcErr != nil {
			return GetOrderQueryResponse{}, calcErr
		}
		resp.Breakdown = &breakdown
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var (
		id            uuid.UUID
		customerEmail string
		status        int
		createdAt     time.Time
		confirmedAt   *time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_email, status, created_at, confirmed_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &customerEmail, &status, &createdAt, &confirmedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(customerEmail)
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(restoredID, email, items, order.Status(status), createdAt, confirmedAt)
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]order.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, product_name, unit_price_amount, currency, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.LineItem, 0)
	for rows.Next() {
		var (
			productID   string
			productName string
			amount      int64
			currency    string
			quantity    int
		)

		if err = rows.Scan(&productID, &productName, &amount, &currency, &quantity); err != nil {
			return nil, err
		}

		unitPrice, priceErr := kernel.NewMoney(amount, kernel.Currency(currency))
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewLineItem(productID, productName, unitPrice, quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
