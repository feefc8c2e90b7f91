package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// TaxRate is the flat tax policy applied to every order subtotal.
// A single consistent default keeps pricing deterministic everywhere
// totals are computed.
const TaxRate = 0.08

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrEmptyItems is returned when an operation requires at least one line
	// item: creating an order or confirming one whose items were all removed.
	ErrEmptyItems = errors.New("order must contain at least one line item")

	// ErrInvalidStatus is returned when a lifecycle transition is attempted
	// from a status that does not permit it.
	ErrInvalidStatus = errors.New("status does not permit this transition")

	// ErrOrderNotModifiable is returned when items are added or removed
	// outside the Pending status.
	ErrOrderNotModifiable = errors.New("items can only be changed while the order is pending")

	// ErrItemNotFound is returned when removing a product that has no line
	// in the order.
	ErrItemNotFound = errors.New("no line item matches the product")

	// ErrAlreadyCancelled is returned when cancelling an order twice.
	ErrAlreadyCancelled = errors.New("order is already cancelled")

	// ErrNonPositiveTotal is returned when confirming an order whose
	// computed total is not positive.
	ErrNonPositiveTotal = errors.New("order total must be positive to confirm")
)

// Order is the aggregate root of the ordering domain. It owns its line items
// exclusively, holds the customer email by value, and enforces the lifecycle
// state machine and pricing rules.
//
// Order is immutable from the caller's perspective: Confirm, Cancel, AddItem
// and RemoveItem return a new *Order and never mutate the receiver. Holders
// of a prior Order value never observe later transitions, which makes shared
// reads safe without coordination; serializing concurrent read-modify-write
// cycles against storage is the persistence layer's job.
//
// Invariants:
//   - all line items share one currency
//   - status transitions follow the Status state machine
//   - confirmedAt is set if and only if status is Confirmed
//   - construction requires a non-empty item list; removals may empty a
//     Pending order, which then cannot be confirmed until items are added
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerEmail is the validated address of the ordering customer
	customerEmail kernel.Email

	// items are the product lines, merged by product ID
	items []LineItem

	// status is the current state in the order lifecycle
	status Status

	// createdAt records when the order was first created
	createdAt time.Time

	// confirmedAt is set on confirmation and cleared again on cancellation
	confirmedAt *time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from a customer email and a non-empty
// list of line items. Items sharing a product ID are merged by summing
// quantities, and all items must share one currency.
//
// Returns ErrEmptyItems for an empty item list, kernel.ErrCurrencyMismatch
// for mixed-currency items, and validation errors for an invalid id or email.
func NewOrder(id kernel.UUID, customerEmail kernel.Email, items []LineItem) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	for _, item := range items {
		merged, err := mergeLineItem(o.items, item)
		if err != nil {
			return nil, err
		}
		o.items = merged
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status, preserves the stored
// timestamps, and permits an empty item list (a Pending order whose items
// were all removed persists that way).
//
// Enforces that confirmedAt is present exactly when status is Confirmed.
func RestoreOrder(
	id kernel.UUID,
	customerEmail kernel.Email,
	items []LineItem,
	status Status,
	createdAt time.Time,
	confirmedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if (confirmedAt != nil) != (status == Confirmed) {
		return nil, errs.NewValueIsInvalidErrorWithCause("confirmedAt",
			fmt.Errorf("confirmation time must be set exactly when status is Confirmed, status is %s", status))
	}
	if confirmedAt != nil {
		at := confirmedAt.UTC()
		o.confirmedAt = &at
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if err := validateSharedCurrency(o.items, item); err != nil {
			return nil, err
		}
		o.items = append(o.items, item)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the customer's validated email address.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// Items returns a copy of the order's line items in insertion order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was confirmed, or nil while the order
// is not in Confirmed status.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// Subtotal returns the sum of all line totals.
// Fails with ErrEmptyItems when the order currently has no items; the
// currency invariant is enforced at construction, so summation itself
// cannot mismatch.
func (o *Order) Subtotal() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if len(o.items) == 0 {
		return kernel.Money{}, ErrEmptyItems
	}

	subtotal := o.items[0].LineTotal()
	for _, item := range o.items[1:] {
		sum, err := subtotal.Add(item.LineTotal())
		if err != nil {
			return kernel.Money{}, err
		}
		subtotal = sum
	}

	return subtotal, nil
}

// Tax returns the tax due on the subtotal at the flat TaxRate,
// rounded to the nearest minor unit.
func (o *Order) Tax() (kernel.Money, error) {
	subtotal, err := o.Subtotal()
	if err != nil {
		return kernel.Money{}, err
	}

	return subtotal.Multiply(TaxRate), nil
}

// Total returns subtotal plus tax.
func (o *Order) Total() (kernel.Money, error) {
	subtotal, err := o.Subtotal()
	if err != nil {
		return kernel.Money{}, err
	}
	tax, err := o.Tax()
	if err != nil {
		return kernel.Money{}, err
	}

	return subtotal.Add(tax)
}

// CanConfirm reports whether Confirm would succeed: the order is Pending,
// has at least one item, and its total is positive.
func (o *Order) CanConfirm() bool {
	if o.Validate() != nil || o.status != Pending || len(o.items) == 0 {
		return false
	}

	total, err := o.Total()
	if err != nil {
		return false
	}

	return total.IsPositive()
}

// Confirm returns a new Order in Confirmed status with confirmedAt set to
// the current time. The receiver is not modified.
//
// Fails with ErrInvalidStatus when the order is not Pending, ErrEmptyItems
// when it has no items, and ErrNonPositiveTotal when the computed total is
// not positive.
func (o *Order) Confirm() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return nil, err
	}

	if len(o.items) == 0 {
		return nil, ErrEmptyItems
	}

	total, err := o.Total()
	if err != nil {
		return nil, err
	}
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	now := time.Now().UTC()
	confirmed := o.clone()
	confirmed.status = newStatus
	confirmed.confirmedAt = &now
	return confirmed, nil
}

// Cancel returns a new Order in Cancelled status. Both Pending and Confirmed
// orders can be cancelled; cancelling a Confirmed order clears confirmedAt
// so the timestamp stays tied to the Confirmed status. The receiver is not
// modified.
//
// Fails with ErrAlreadyCancelled when the order is already Cancelled.
func (o *Order) Cancel() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	cancelled := o.clone()
	cancelled.status = newStatus
	cancelled.confirmedAt = nil
	return cancelled, nil
}

// AddItem returns a new Order including the given item. A line sharing the
// item's product ID is merged by summing quantities, keeping the existing
// line's name and unit price; otherwise the item is appended. The receiver
// is not modified.
//
// Fails with ErrOrderNotModifiable outside Pending status and with
// kernel.ErrCurrencyMismatch when the item's currency differs from the
// order's.
func (o *Order) AddItem(item LineItem) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if !o.status.AllowsItemChanges() {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderNotModifiable, o.status)
	}

	merged, err := mergeLineItem(o.items, item)
	if err != nil {
		return nil, err
	}

	updated := o.clone()
	updated.items = merged
	return updated, nil
}

// RemoveItem returns a new Order without the line matching productID.
// Removing the last line leaves an empty Pending order that cannot be
// confirmed until an item is added again. The receiver is not modified.
//
// Fails with ErrOrderNotModifiable outside Pending status and with
// ErrItemNotFound when no line matches.
func (o *Order) RemoveItem(productID string) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if !o.status.AllowsItemChanges() {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderNotModifiable, o.status)
	}

	idx := slices.IndexFunc(o.items, func(item LineItem) bool {
		return item.ProductID() == productID
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}

	updated := o.clone()
	updated.items = slices.Delete(slices.Clone(o.items), idx, idx+1)
	return updated, nil
}

// clone returns a copy of the order with an independent items slice.
func (o *Order) clone() *Order {
	copied := *o
	copied.items = slices.Clone(o.items)
	return &copied
}

// mergeLineItem folds item into items: merges with an existing line sharing
// the product ID by summing quantities, otherwise appends. Validates the
// item and the single-currency invariant.
func mergeLineItem(items []LineItem, item LineItem) ([]LineItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := validateSharedCurrency(items, item); err != nil {
		return nil, err
	}

	merged := slices.Clone(items)
	for i, existing := range merged {
		if existing.ProductID() == item.ProductID() {
			combined, err := existing.withQuantity(existing.Quantity() + item.Quantity())
			if err != nil {
				return nil, err
			}
			merged[i] = combined
			return merged, nil
		}
	}

	return append(merged, item), nil
}

// validateSharedCurrency rejects an item whose currency differs from the
// currency of the lines already in the order.
func validateSharedCurrency(items []LineItem, item LineItem) error {
	if len(items) == 0 {
		return nil
	}

	existing := items[0].UnitPrice().Currency()
	incoming := item.UnitPrice().Currency()
	if existing != incoming {
		return fmt.Errorf("%w: order is priced in %s, item %q is priced in %s",
			kernel.ErrCurrencyMismatch, existing, item.ProductID(), incoming)
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}
	o.customerEmail = customerEmail
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
