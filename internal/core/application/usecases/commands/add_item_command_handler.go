package commands

import (
	"context"
)

// AddItemCommandHandler handles adding line items to pending orders.
// Changing the contents of a confirmed or cancelled order is rejected by
// the aggregate.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for item addition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	changed, err := aggregate.AddItem(cmd.Item())
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
