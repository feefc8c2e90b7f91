package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/ports"
)

// ConfirmOrderCommandHandler handles the business logic for order confirmation.
// Charges the customer for the order total, moves the order to "confirmed"
// status and announces the transition to interested systems.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory, gateway, publisher)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order confirmation failed: %w", err)
//	}
//	// Order is now confirmed and its contents are locked
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	publisher  ports.OrderEventPublisher
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence, a PaymentGateway
// for charging the customer and an OrderEventPublisher for announcing the
// confirmed order.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	publisher ports.OrderEventPublisher,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		publisher:  publisher,
	}
}

// Handle processes the order confirmation command.
// Checks the lifecycle gate before charging so a rejected transition never
// bills the customer, and charges before persisting so a declined payment
// leaves the order untouched. The confirmed event is published only after
// the transaction commits.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	confirmed, err := aggregate.Confirm()
	if err != nil {
		return err
	}

	total, err := aggregate.Total()
	if err != nil {
		return err
	}

	if _, err = h.gateway.Charge(ctx, total, aggregate.CustomerEmail()); err != nil {
		return fmt.Errorf("charging order %s failed: %w", cmd.OrderID(), err)
	}

	if err = orderRepo.Update(ctx, confirmed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderConfirmed(ctx, confirmed); err != nil {
		return fmt.Errorf("order %s confirmed but publishing event failed: %w", cmd.OrderID(), err)
	}

	return nil
}
