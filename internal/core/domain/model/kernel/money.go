package kernel

import (
	"errors"
	"fmt"
	"math"

	"ordering/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney constructor")

// ErrCurrencyMismatch is returned when arithmetic is attempted between
// amounts of different currencies. Arithmetic never coerces silently.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money represents a monetary amount in a single currency, stored as an
// integer count of minor units (cents) to avoid floating-point drift.
//
// Money is an immutable value object: every operation returns a new value and
// never mutates the receiver. The zero value is invalid and fails validation.
//
// Amounts may be negative or zero; whether that is acceptable is a caller
// concern (a line item requires a positive unit price, a discount does not).
//
// Example:
//
//	price, err := kernel.NewMoney(10000, kernel.USD)
//	if err != nil {
//	    // handle invalid currency
//	}
//	fmt.Println(price) // Output: $100.00
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value of the given amount of minor units in the
// given currency. Any integer amount is valid, including zero and negative
// values; the only failure mode is an unsupported currency.
func NewMoney(amount int64, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Validate checks that the Money value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns a new Money holding the sum of both amounts.
// Fails with ErrCurrencyMismatch when the operands have different currencies.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// Subtract returns a new Money holding the difference of both amounts.
// Fails with ErrCurrencyMismatch when the operands have different currencies.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.validatePair(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount-other.amount, m.currency)
}

// Multiply returns a new Money scaled by factor, rounded to the nearest minor
// unit. Ties round half up, toward positive infinity: 2.5 rounds to 3 and
// -2.5 rounds to -2. Negative factors are permitted and represent credits.
func (m Money) Multiply(factor float64) Money {
	scaled := int64(math.Floor(float64(m.amount)*factor + 0.5))

	result := m
	result.amount = scaled
	return result
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values by amount and currency.
// Both values must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount && m.currency == other.currency, nil
}

// String renders the amount in conventional notation, e.g. "$12.34" or
// "-€0.05". All supported currencies use 100 minor units per major unit.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	amount := m.amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%s%d.%02d",
		sign, m.currency.Symbol(), amount/MinorUnitsPerMajor, amount%MinorUnitsPerMajor)
}

// validatePair checks that both operands are constructed and share a currency.
func (m Money) validatePair(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}

	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return nil
}

// setAmount sets the amount of minor units.
// Note: pointer receiver used for self-encapsulated construction, matching
// the private setter convention of the other value objects.
func (m *Money) setAmount(amount int64) error {
	m.amount = amount
	return nil
}

// setCurrency validates and sets the currency.
func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
