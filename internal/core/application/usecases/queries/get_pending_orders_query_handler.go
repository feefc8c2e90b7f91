package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves orders awaiting confirmation from the database.
// Filters by status to provide active checkout workload visibility.
//
// Example:
//
//	handler := NewGetPendingOrdersQueryHandler(db)
//	query := NewGetPendingOrdersQuery()
//
//	pendingOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending orders: %v", err)
//	    return err
//	}
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Results are sorted by creation time so the oldest orders come first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_email,
			o.created_at,
			COUNT(i.product_id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.customer_email, o.created_at
		ORDER BY o.created_at, o.id
	`, int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetPendingOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderResp.CustomerEmail,
			&createdAt,
			&orderResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.CreatedAt = createdAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
