// Package kernel provides the shared domain primitives of the ordering
// system: the value objects every aggregate builds on.
//
// The package includes:
//   - Money: a fixed-point monetary amount in a single currency
//   - Currency: the closed set of currencies Money supports
//   - Email: a validated, normalized email address
//   - UUID: a value object for unique identifiers
//
// All primitives are immutable, enforce their invariants through validating
// constructors, and are safe for concurrent use. Zero values are invalid and
// fail Validate, which keeps improperly constructed objects out of the
// domain model.
package kernel
