package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrPaymentDeclined is returned by Charge when the provider rejects the
// payment. The order stays pending and the charge can be retried.
var ErrPaymentDeclined = errors.New("payment was declined by the provider")

// PaymentReference identifies a charge accepted by the payment provider.
type PaymentReference string

// PaymentGateway defines the contract for charging a customer before an
// order is confirmed. Implementations call out to an external payment
// provider; a failed charge must leave the order untouched.
type PaymentGateway interface {
	// Charge bills the given amount to the customer identified by email.
	// Returns a provider reference for the accepted charge.
	Charge(ctx context.Context, amount kernel.Money, customerEmail kernel.Email) (PaymentReference, error)
}
