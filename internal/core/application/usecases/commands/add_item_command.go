package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a line item to a pending order.
// Adding a product already present in the order merges quantities instead of
// creating a duplicate line.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    order.LineItem

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add the given item to an order.
// Validates the order ID and converts the raw input into a domain line item.
func NewAddItemCommand(orderID kernel.UUID, item ItemInput) (AddItemCommand, error) {
	addCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setOrderID(orderID),
		addCommand.setItem(item),
	); err != nil {
		return AddItemCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to change.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the validated line item to add.
func (c AddItemCommand) Item() order.LineItem {
	return c.item
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItem(item ItemInput) error {
	lineItem, err := item.toLineItem()
	if err != nil {
		return err
	}

	c.item = lineItem
	return nil
}
