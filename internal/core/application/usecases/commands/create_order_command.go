package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemInput carries the raw line item fields accepted at the application
// boundary before they are turned into domain value objects.
type ItemInput struct {
	ProductID   string
	ProductName string
	UnitPrice   int64
	Currency    string
	Quantity    int
}

// toLineItem converts the raw input into a validated domain line item.
func (i ItemInput) toLineItem() (order.LineItem, error) {
	unitPrice, err := kernel.NewMoney(i.UnitPrice, kernel.Currency(i.Currency))
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(i.ProductID, i.ProductName, unitPrice, i.Quantity)
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer identity and the initial set of line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "buyer@example.com", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting confirmation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerEmail kernel.Email
	items         []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the email is well-formed, and every
// item input converts to a valid line item. Returns an error if any fails.
func NewCreateOrderCommand(
	orderID kernel.UUID, customerEmail string, items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerEmail(customerEmail),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerEmail returns the normalized customer email.
func (c CreateOrderCommand) CustomerEmail() kernel.Email {
	return c.customerEmail
}

// Items returns the validated line items for the new order.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail string) error {
	email, err := kernel.NewEmail(customerEmail)
	if err != nil {
		return err
	}

	c.customerEmail = email
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		lineItem, err := item.toLineItem()
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	c.items = lineItems
	return nil
}
