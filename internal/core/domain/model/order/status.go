package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Confirmed ──> Cancelled
//	          │                      ▲
//	          └──────────────────────┘
//
// Confirmed and Cancelled permit no transition back to Pending, Cancelled is
// terminal, and confirming twice is rejected.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Items may still be added or removed
	// and the order can be confirmed or cancelled.
	Pending

	// Confirmed indicates the order has been accepted and priced.
	// A confirmed order can only be cancelled.
	Confirmed

	// Cancelled is the terminal status. No further transitions are allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of Pending, Confirmed, Cancelled.
// Unknown (0) and any other values are invalid. Used when statuses arrive
// from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowsItemChanges reports whether line items may be added or removed
// while the order is in this status. Only Pending orders are modifiable.
func (s Status) AllowsItemChanges() bool {
	return s == Pending
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other starting status fails with ErrInvalidStatus, including a second
// confirmation of an already Confirmed order.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: cannot confirm from %s", ErrInvalidStatus, s)
	}

	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Cancelling an already Cancelled order fails with ErrAlreadyCancelled;
// any other invalid starting status fails with ErrInvalidStatus.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Confirmed:
		return Cancelled, nil
	case Cancelled:
		return 0, ErrAlreadyCancelled
	default:
		return 0, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidStatus, s)
	}
}
