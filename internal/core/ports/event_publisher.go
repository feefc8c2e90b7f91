package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher defines the contract for announcing order lifecycle
// transitions to interested systems. Publishing happens after the state
// change is committed; implementations must not mutate the aggregate.
type OrderEventPublisher interface {
	// PublishOrderConfirmed announces that the order passed its confirmation
	// gate and was charged.
	PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error

	// PublishOrderCancelled announces that the order was cancelled.
	PublishOrderCancelled(ctx context.Context, aggregate *order.Order) error
}
