package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Currency identifies the currency of a monetary amount.
// Every supported currency is assumed to have 100 minor units per major unit
// (a deliberate simplification; none of the supported currencies deviate).
type Currency string

const (
	// USD is the United States dollar.
	USD Currency = "USD"
	// EUR is the euro.
	EUR Currency = "EUR"
	// GBP is the pound sterling.
	GBP Currency = "GBP"
)

// MinorUnitsPerMajor is the number of minor units (cents) in one major unit
// for every supported currency.
const MinorUnitsPerMajor = 100

func getCurrencySymbols() map[Currency]string {
	return map[Currency]string{
		USD: "$",
		EUR: "€",
		GBP: "£",
	}
}

// Validate checks that the currency is one of the supported values.
// The zero value ("") and arbitrary strings are invalid.
func (c Currency) Validate() error {
	if _, ok := getCurrencySymbols()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a supported currency", string(c)))
	}
	return nil
}

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the conventional symbol used when formatting amounts,
// e.g. "$" for USD. Unsupported currencies yield an empty string.
func (c Currency) Symbol() string {
	return getCurrencySymbols()[c]
}
