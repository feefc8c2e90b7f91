package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// confirmed within the configured window. Run periodically by the stale
// order cancellation job.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
// Requires an OrderUoWFactory for transactional persistence and an
// OrderEventPublisher for announcing each cancelled order.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stale order cleanup command. Returns how many orders
// were cancelled.
// Cancels every pending order created before the cutoff in a single
// transaction; cancellation events are published after commit.
func (h *CancelStaleOrdersCommandHandler) Handle(
	ctx context.Context, cmd CancelStaleOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	staleOrders, err := orderRepo.GetPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := make([]*order.Order, 0, len(staleOrders))
	for _, aggregate := range staleOrders {
		next, cancelErr := aggregate.Cancel()
		if cancelErr != nil {
			return 0, cancelErr
		}

		if err = orderRepo.Update(ctx, next); err != nil {
			return 0, err
		}

		cancelled = append(cancelled, next)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range cancelled {
		if err = h.publisher.PublishOrderCancelled(ctx, aggregate); err != nil {
			return len(cancelled), fmt.Errorf(
				"stale order %s cancelled but publishing event failed: %w",
				aggregate.ID(), err,
			)
		}
	}

	return len(cancelled), nil
}
