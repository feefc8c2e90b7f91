package services

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// PriceBreakdown is the itemized pricing of an order: the subtotal over all
// line totals, the tax due on it, and their sum.
type PriceBreakdown struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// PriceCalculator is a domain service that derives the full price breakdown
// of an order in one pass, so presentation and reporting layers render the
// same figures the aggregate uses for its own confirmation rules.
//
// Example usage:
//
//	calculator := NewPriceCalculator()
//	breakdown, err := calculator.Calculate(order)
//	if err != nil {
//	    // order has no items
//	    return
//	}
//	fmt.Printf("%s + %s tax = %s", breakdown.Subtotal, breakdown.Tax, breakdown.Total)
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate returns the price breakdown of the given order.
// Fails when the order is invalid or currently has no line items.
func (PriceCalculator) Calculate(o *order.Order) (PriceBreakdown, error) {
	if err := o.Validate(); err != nil {
		return PriceBreakdown{}, err
	}

	subtotal, err := o.Subtotal()
	if err != nil {
		return PriceBreakdown{}, err
	}
	tax, err := o.Tax()
	if err != nil {
		return PriceBreakdown{}, err
	}
	total, err := o.Total()
	if err != nil {
		return PriceBreakdown{}, err
	}

	return PriceBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}
