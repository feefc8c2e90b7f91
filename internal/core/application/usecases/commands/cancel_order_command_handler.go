package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Moves the order to "cancelled" status and announces the transition.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence and an
// OrderEventPublisher for announcing the cancelled order.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order cancellation command. Returns the status the
// order had before cancellation so callers can tell a cancelled pending
// order from a cancelled confirmed one.
// The cancelled event is published only after the transaction commits.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context, cmd CancelOrderCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}
	previousStatus := aggregate.Status()

	cancelled, err := aggregate.Cancel()
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	if err = h.publisher.PublishOrderCancelled(ctx, cancelled); err != nil {
		return previousStatus, fmt.Errorf("order %s cancelled but publishing event failed: %w", cmd.OrderID(), err)
	}

	return previousStatus, nil
}
