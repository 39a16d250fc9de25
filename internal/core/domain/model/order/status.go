package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──> Issued
//
// Issued is a terminal state. There is no transition back to Open and no
// further transitions from Issued.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is first created.
	// Items can be returned only while the order is Open.
	Open

	// Issued indicates the order has been fulfilled and handed over.
	// This is a final state; no returns are permitted after issuance.
	Issued
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Issued:  "Issued",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "Open",
		Issued: "Issued",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Open, Issued. Unknown (0) and any other values are
// invalid. Used to ensure Status values from external sources
// (e.g., database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Open" or "Issued" for valid statuses and "Unknown" for invalid
// status values. Implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateReturn checks whether items may still be returned in the current status.
//
// Returns are only permitted while the order is Open. An Issued order
// produces a state-conflict error, any other value an invalid-status error.
//
// This method provides validation without side effects, used by the aggregate
// before flipping an item's returned flag.
func (s Status) ValidateReturn() error {
	if s == Issued {
		return errs.NewStateConflictError("order already issued")
	}
	if s != Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to return from", s.String()),
		)
	}
	return nil
}

// Issue transitions the status to Issued.
//
// Valid transitions:
//   - Open -> Issued
//
// Invalid transitions:
//   - Issued -> Issued (already issued, state conflict)
//   - Unknown -> Issued (invalid initial state)
//
// Returns:
//   - (Issued, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Issue() to enforce state transitions.
// Issued is a final state with no further transitions possible.
func (s Status) Issue() (Status, error) {
	if s == Issued {
		return 0, errs.NewStateConflictError("order already issued")
	}
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to issue", s.String()),
		)
	}

	return Issued, nil
}
