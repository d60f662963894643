package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

// ErrSubmitForApprovalCommandIsNotConstructed is returned when a
// SubmitForApprovalCommand bypassed its constructor.
var ErrSubmitForApprovalCommandIsNotConstructed = errors.New(
	"SubmitForApprovalCommand must be created via NewSubmitForApprovalCommand constructor",
)

// SubmitForApprovalCommand represents a request to start the approval
// workflow for an order.
type SubmitForApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	changedBy string

	guard guard.ConstructorGuard
}

// NewSubmitForApprovalCommand creates a command to submit an order for
// approval. An empty actor identity defaults to the system sentinel.
func NewSubmitForApprovalCommand(orderID kernel.UUID, changedBy string) (SubmitForApprovalCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitForApprovalCommand{}, err
	}

	return SubmitForApprovalCommand{
		orderID:   orderID,
		changedBy: normalizeActor(changedBy),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitForApprovalCommand) Validate() error {
	return c.guard.Validate(ErrSubmitForApprovalCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to submit.
func (c SubmitForApprovalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChangedBy returns the acting identity recorded in the status history.
func (c SubmitForApprovalCommand) ChangedBy() string {
	return c.changedBy
}
