package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel every pending order
// that has sat unconfirmed for longer than the given age.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
// Validates that the age threshold is positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the age beyond which a pending order counts as stale.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
