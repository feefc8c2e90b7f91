package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items and price breakdown.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s total: %s\n", view.ID, view.Breakdown.Total)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the given order.
// Returns an error if the order ID is invalid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full read model of a single order.
// Breakdown is nil when the order currently has no line items.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerEmail string
	Status        order.Status
	CreatedAt     time.Time
	ConfirmedAt   *time.Time
	Items         []GetOrderQueryItemResponse
	Breakdown     *services.PriceBreakdown
}

// GetOrderQueryItemResponse represents one priced line of the order view.
type GetOrderQueryItemResponse struct {
	ProductID   string
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	LineTotal   kernel.Money
}
