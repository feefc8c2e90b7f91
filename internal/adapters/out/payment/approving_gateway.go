// Package payment provides the outbound payment gateway adapter.
// The current implementation approves every charge locally; the
// ports.PaymentGateway seam keeps the confirmation flow unchanged when a
// real payment provider is plugged in.
package payment

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// ApprovingGateway implements ports.PaymentGateway by approving every charge
// and issuing a generated payment reference.
type ApprovingGateway struct {
	logger *slog.Logger
}

// NewApprovingGateway creates a gateway that approves all charges.
func NewApprovingGateway(logger *slog.Logger) *ApprovingGateway {
	return &ApprovingGateway{
		logger: logger.With("component", "payment-gateway"),
	}
}

// Charge approves the charge and returns a fresh payment reference.
func (g *ApprovingGateway) Charge(
	ctx context.Context, amount kernel.Money, customerEmail kernel.Email,
) (ports.PaymentReference, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := amount.Validate(); err != nil {
		return "", err
	}

	reference := ports.PaymentReference("pay_" + uuid.NewString())
	g.logger.Info("charge approved",
		"reference", string(reference),
		"amount", amount.String(),
		"customer", customerEmail.String(),
	)

	return reference, nil
}
