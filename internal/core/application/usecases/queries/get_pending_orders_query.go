// Package queries contains read-only operations that project system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return response models instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting confirmation.
// Returns orders in "pending" status for monitoring and checkout flows.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting confirmation\n", len(orders))
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query that fetches all orders awaiting confirmation.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents pending order information.
// Contains the identifying data needed to list orders awaiting confirmation.
type GetPendingOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerEmail string
	CreatedAt     time.Time
	ItemCount     int
}
