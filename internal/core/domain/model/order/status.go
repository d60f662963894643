package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct approval workflow.
//
// State transitions:
//
//	draft ──> pending_approval ──┬──> approved
//	  │                          └──> rejected
//	  └──> draft (update while modifiable)
//
// approved and rejected are terminal: no transition leaves them.
// A below-threshold submission passes through pending_approval and lands
// on approved within the same operation.
type Status string

const (
	// StatusDraft is the initial status when an order is first created.
	// Draft orders are fully editable.
	StatusDraft Status = "draft"

	// StatusPendingApproval indicates the order was submitted and is waiting
	// for its approval levels to be decided.
	StatusPendingApproval Status = "pending_approval"

	// StatusApproved indicates the order passed every required approval
	// level (or required none). This is a final state.
	StatusApproved Status = "approved"

	// StatusRejected indicates some approval level rejected the order.
	// This is a final state.
	StatusRejected Status = "rejected"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusDraft:           {},
		StatusPendingApproval: {},
		StatusApproved:        {},
		StatusRejected:        {},
	}
}

// StatusFromString converts a raw string into a Status.
// Returns an error if the string is not a recognized status value.
// Used when reconstructing orders from persistence or parsing caller input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: draft, pending_approval, approved, rejected.
// The zero value ("") and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the raw status value.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status is a final state.
// approved and rejected orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
