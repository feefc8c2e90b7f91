package commands

import (
	"context"
)

// RemoveItemCommandHandler handles removing line items from pending orders.
// Removing the last item leaves a pending order without items; such an order
// cannot be confirmed until an item is added back.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.RemoveItem(cmd.ProductID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, changed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
