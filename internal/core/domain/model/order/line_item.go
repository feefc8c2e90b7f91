package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an
// improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem represents one priced, quantified product reference within an
// order. It is an immutable value object owned exclusively by its Order.
//
// Invariants:
//   - product ID is non-empty
//   - quantity is strictly positive
//   - unit price is strictly positive
//
// Because construction enforces these rules, LineTotal never fails.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   string
	productName string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem after validating all attributes.
// Fails when productID is empty, quantity is not positive, or unitPrice is
// not a positive constructed Money value.
func NewLineItem(productID string, productName string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks that the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (i LineItem) ProductID() string {
	return i.productID
}

// ProductName returns the display name of the referenced product.
func (i LineItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// LineTotal returns the item's contribution to the order subtotal:
// the unit price scaled by the quantity. Pure, no failure mode, since
// construction already guaranteed validity.
func (i LineItem) LineTotal() kernel.Money {
	return i.unitPrice.Multiply(float64(i.quantity))
}

// withQuantity returns a copy of the item carrying a different quantity.
// Used when merging lines that share a product ID.
func (i LineItem) withQuantity(quantity int) (LineItem, error) {
	return NewLineItem(i.productID, i.productName, i.unitPrice, quantity)
}

func (i *LineItem) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	i.productID = productID
	return nil
}

func (i *LineItem) setProductName(productName string) error {
	i.productName = productName
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than zero", unitPrice))
	}

	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.quantity = quantity
	return nil
}
