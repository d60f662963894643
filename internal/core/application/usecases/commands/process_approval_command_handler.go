package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// ProcessApprovalCommandHandler handles approval decisions.
// A rejection at any level finalizes the order as rejected; once no
// second-level approval remains pending after an approval, the order
// becomes fully approved.
type ProcessApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProcessApprovalCommandHandler creates a handler for approval decisions.
func NewProcessApprovalCommandHandler(uowFactory OrderUoWFactory) ProcessApprovalCommandHandler {
	return ProcessApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval decision and returns the aggregate with the
// level resolved and, possibly, a new overall status. The pending-approval
// lookup and the status write share one transaction, so two approvers
// racing on the same level cannot both succeed.
func (h *ProcessApprovalCommandHandler) Handle(ctx context.Context, cmd ProcessApprovalCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ProcessApproval(cmd.Level(), cmd.Decision(), cmd.ApprovedBy(), cmd.Notes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
