package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a product's line item
// from a pending order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove the given product from an order.
// Validates the order ID and that the product ID is not empty.
func NewRemoveItemCommand(orderID kernel.UUID, productID string) (RemoveItemCommand, error) {
	removeCommand := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setOrderID(orderID),
		removeCommand.setProductID(productID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveItemCommandIsNotConstructed if validation fails.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to change.
func (c RemoveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product whose line item should be removed.
func (c RemoveItemCommand) ProductID() string {
	return c.productID
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}
