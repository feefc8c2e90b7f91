// Package services provides domain services for operations that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - PriceCalculator: derives the subtotal, tax and total of an order in one pass
//
// Domain services stay free of infrastructure concerns and operate purely on
// domain model types, following Domain-Driven Design principles.
package services
