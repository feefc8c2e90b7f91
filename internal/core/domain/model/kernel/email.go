package kernel

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// emailMaxLength is the maximum accepted length of a normalized address.
const emailMaxLength = 255

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Email must be created via the NewEmail constructor.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email represents a validated, normalized email address.
//
// Every Email in the system is constructed through NewEmail, so holding an
// Email value is itself the guarantee that the address is well-formed.
// Normalization trims surrounding whitespace and lowercases the address.
//
// Validation is intentionally minimal: a non-empty local part, an "@", a
// non-empty domain part, and a bounded length. Full RFC 5322 validation is
// deliberately not attempted; deliverability is the mail system's concern.
//
// Example:
//
//	email, err := kernel.NewEmail("  Alice@Example.COM ")
//	if err != nil {
//	    // handle malformed address
//	}
//	fmt.Println(email) // Output: alice@example.com
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates an Email from a raw address string.
// The raw value is trimmed and lowercased before validation.
func NewEmail(raw string) (Email, error) {
	email := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setAddress(raw); err != nil {
		return Email{}, err
	}

	return email, nil
}

// Validate checks that the Email was created through NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// String returns the normalized address.
// This method implements the fmt.Stringer interface.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails by their normalized addresses.
// Both values must be properly constructed.
func (e Email) IsEqual(other Email) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return e.address == other.address, nil
}

// setAddress normalizes and validates the raw address.
func (e *Email) setAddress(raw string) error {
	address := strings.ToLower(strings.TrimSpace(raw))

	if address == "" {
		return errs.NewValueIsRequiredError("email")
	}

	if len(address) > emailMaxLength {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("address is %d characters, maximum is %d", len(address), emailMaxLength))
	}

	local, domain, found := strings.Cut(address, "@")
	if !found {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is missing the @ separator", address))
	}
	if local == "" || domain == "" {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q has an empty local or domain part", address))
	}

	e.address = address
	return nil
}
