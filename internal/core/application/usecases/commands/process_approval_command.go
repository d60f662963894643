package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrProcessApprovalCommandIsNotConstructed is returned when a
// ProcessApprovalCommand bypassed its constructor.
var ErrProcessApprovalCommandIsNotConstructed = errors.New(
	"ProcessApprovalCommand must be created via NewProcessApprovalCommand constructor",
)

// ProcessApprovalCommand represents an approver's decision on one approval
// level of an order.
type ProcessApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	level      order.Level
	decision   order.ApprovalStatus
	approvedBy string
	notes      string

	guard guard.ConstructorGuard
}

// NewProcessApprovalCommand creates a command carrying an approval decision.
// The level must be a valid approval level, the decision must be approved or
// rejected, and the approver identity is required.
func NewProcessApprovalCommand(
	orderID kernel.UUID,
	level order.Level,
	decision order.ApprovalStatus,
	approvedBy string,
	notes string,
) (ProcessApprovalCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		level.Validate(),
		decision.ValidateDecision(),
		validateApprover(approvedBy),
	); err != nil {
		return ProcessApprovalCommand{}, err
	}

	return ProcessApprovalCommand{
		orderID:    orderID,
		level:      level,
		decision:   decision,
		approvedBy: approvedBy,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func validateApprover(approvedBy string) error {
	if approvedBy == "" {
		return errs.NewValueIsRequiredError("approvedBy")
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessApprovalCommand) Validate() error {
	return c.guard.Validate(ErrProcessApprovalCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being decided.
func (c ProcessApprovalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Level returns the approval level being decided.
func (c ProcessApprovalCommand) Level() order.Level {
	return c.level
}

// Decision returns the approval decision, approved or rejected.
func (c ProcessApprovalCommand) Decision() order.ApprovalStatus {
	return c.decision
}

// ApprovedBy returns the approver identity.
func (c ProcessApprovalCommand) ApprovedBy() string {
	return c.approvedBy
}

// Notes returns the free-text notes attached to the decision.
func (c ProcessApprovalCommand) Notes() string {
	return c.notes
}
