// Package order implements the Order aggregate root of the ordering system:
// line items, pricing derivations, and the lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding items, customer email, and status
//   - LineItem: a priced, quantified product reference within an order
//   - Status: a state machine enforcing Pending -> Confirmed/Cancelled
//
// Key business rules:
//   - Orders are created Pending with at least one line item
//   - All line items of an order share one currency
//   - Total = subtotal + subtotal * TaxRate, in minor units, rounded half up
//   - Confirmation requires a Pending order with items and a positive total
//   - Cancelled is terminal; nothing returns to Pending
//
// Unlike a conventional mutable aggregate, every transition returns a new
// *Order value and never mutates the receiver, so previously obtained Order
// values are stable under concurrent reads. Expected business failures are
// package sentinel errors inspected with errors.Is; nothing here panics.
package order
